// Package weather renders current conditions and a short hourly outlook.
// The fetch is best-effort: failures keep the last good reading, or the
// placeholder when there never was one.
package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
	"tableflip.dev/tabletop/pkg/weather"
)

// ID identifies the weather widget in keymap scopes and emitted events.
const ID = "weather"

// refreshEvery is how often conditions are re-fetched.
const refreshEvery = 15 * time.Minute

// fetchedMsg carries the result of one fetch.
type fetchedMsg struct {
	reading weather.Reading
	err     error
}

// refreshMsg triggers the next periodic fetch.
type refreshMsg struct{}

// Model is the weather widget.
type Model struct {
	client *weather.Client
	th     theme.Theme

	lat, lon  float64
	located   bool
	reading   weather.Reading
	haveData  bool
	fetchedAt time.Time

	position int
	focused  bool
	width    int
	height   int
}

// NewModel returns a weather widget for the configured coordinates. When no
// location is configured the widget shows the placeholder and never fetches.
func NewModel(client *weather.Client, th theme.Theme, position int, lat, lon float64, located bool) *Model {
	return &Model{
		client:   client,
		th:       th,
		lat:      lat,
		lon:      lon,
		located:  located,
		reading:  weather.Placeholder(),
		position: position,
	}
}

func (m *Model) fetchCmd() tea.Cmd {
	client, lat, lon := m.client, m.lat, m.lon
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		r, err := client.Current(ctx, lat, lon)
		return fetchedMsg{reading: r, err: err}
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return refreshMsg{} })
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd {
	if !m.located {
		return nil
	}
	return tea.Batch(m.fetchCmd(), refreshTick())
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.err != nil {
			if !m.haveData {
				m.reading = weather.Placeholder()
			}
			return m, events.ErrCmd(ID, msg.err)
		}
		m.reading = msg.reading
		m.haveData = true
		m.fetchedAt = time.Now()
	case refreshMsg:
		return m, tea.Batch(m.fetchCmd(), refreshTick())
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	var lines []string
	if !m.located {
		lines = []string{
			m.th.Panel.Body.Render("no location configured"),
			m.th.Panel.Muted.Render("set latitude / longitude"),
			m.th.Panel.Muted.Render("in .tabletop.yaml"),
		}
	} else {
		r := m.reading
		lines = append(lines,
			m.th.Panel.Accent.Render(r.Place),
			m.th.Panel.Body.Render(fmt.Sprintf("%.0f° %s", r.Temperature, r.Description())),
			m.th.Panel.Muted.Render(fmt.Sprintf("H %.0f°  L %.0f°", r.High, r.Low)),
		)
		if hourly := m.hourlyLine(); hourly != "" {
			lines = append(lines, "", m.th.Panel.Body.Render(hourly))
		}
		if !m.haveData {
			lines = append(lines, m.th.Panel.Muted.Render("fetching…"))
		}
	}
	return panel.Render(m.th.Panel, panel.Options{
		Symbol:   "☁",
		Title:    "weather",
		Position: m.position,
		Focused:  m.focused,
		Width:    m.width,
		Height:   m.height,
	}, strings.Join(lines, "\n"))
}

// hourlyLine renders the next few hourly samples as "15h 21°" pairs.
func (m *Model) hourlyLine() string {
	var parts []string
	for _, h := range m.reading.Hourly {
		if len(parts) == 3 {
			break
		}
		parts = append(parts, fmt.Sprintf("%02dh %.0f°", h.Time.Hour(), h.Temperature))
	}
	return strings.Join(parts, "  ")
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused implements ui.Focusable.
func (m *Model) SetFocused(focused bool) { m.focused = focused }
