// Package timeutil holds the time formatting helpers shared by the clock
// widget and the CLI.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/tabletop/pkg/store"
)

// Format selects 12- or 24-hour clock rendering.
type Format string

const (
	// Format24 renders 15:04.
	Format24 Format = "24h"
	// Format12 renders 3:04 PM.
	Format12 Format = "12h"
)

type clockPref struct {
	Format Format `json:"format"`
}

// LoadFormat reads the persisted clock preference, defaulting to 24-hour.
func LoadFormat(p store.Persistence) Format {
	var pref clockPref
	if p.GetJSON(store.KeyClock, &pref) && (pref.Format == Format12 || pref.Format == Format24) {
		return pref.Format
	}
	return Format24
}

// SaveFormat persists the clock preference.
func SaveFormat(p store.Persistence, f Format) error {
	return p.SetJSON(store.KeyClock, clockPref{Format: f})
}

// Toggle flips between the two formats.
func (f Format) Toggle() Format {
	if f == Format12 {
		return Format24
	}
	return Format12
}

// Clock renders t in the selected format.
func (f Format) Clock(t time.Time) string {
	if f == Format12 {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// Countdown renders a remaining duration as m:ss (or h:mm:ss past an hour),
// clamping negatives to zero.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Uptime renders a duration in compact day/hour/minute units, e.g. "3d4h",
// "2h15m", or "45m". Sub-minute uptimes render as "<1m".
func Uptime(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if days == 0 && minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if b.Len() == 0 {
		return "<1m"
	}
	return b.String()
}
