package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/tabletop/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }

func TestFormatPersistence(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if got := LoadFormat(p); got != Format24 {
		t.Fatalf("default format = %v, want 24h", got)
	}
	if err := SaveFormat(p, Format12); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadFormat(p); got != Format12 {
		t.Fatalf("loaded format = %v, want 12h", got)
	}
}

func TestLoadFormatIgnoresGarbage(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if err := p.Set(store.KeyClock, []byte(`{"format":"13h"}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := LoadFormat(p); got != Format24 {
		t.Fatalf("format = %v, want default 24h", got)
	}
}

func TestClockRendering(t *testing.T) {
	at := time.Date(2025, time.June, 1, 15, 4, 0, 0, time.UTC)
	if got := Format24.Clock(at); got != "15:04" {
		t.Fatalf("24h = %q", got)
	}
	if got := Format12.Clock(at); got != "3:04 PM" {
		t.Fatalf("12h = %q", got)
	}
	if Format24.Toggle() != Format12 || Format12.Toggle() != Format24 {
		t.Fatal("toggle broken")
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{61 * time.Second, "1:01"},
		{0, "0:00"},
		{-5 * time.Second, "0:00"},
		{90 * time.Minute, "1:30:00"},
	}
	for _, tc := range cases {
		if got := Countdown(tc.in); got != tc.want {
			t.Fatalf("Countdown(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUptime(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "<1m"},
		{45 * time.Minute, "45m"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{76 * time.Hour, "3d4h"},
		{24 * time.Hour, "1d"},
	}
	for _, tc := range cases {
		if got := Uptime(tc.in); got != tc.want {
			t.Fatalf("Uptime(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
