// Package sysinfo renders host vitals sampled from /proc.
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/sysinfo"
	"tableflip.dev/tabletop/pkg/timeutil"
	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
)

// ID identifies the sysinfo widget in keymap scopes and emitted events.
const ID = "sysinfo"

const sampleEvery = 5 * time.Second

// sampleMsg carries a fresh snapshot.
type sampleMsg struct {
	snap sysinfo.Snapshot
}

// Model is the system info widget.
type Model struct {
	collector *sysinfo.Collector
	th        theme.Theme
	snap      sysinfo.Snapshot

	position int
	focused  bool
	width    int
	height   int
}

// NewModel takes an initial sample synchronously so the first frame has data.
func NewModel(c *sysinfo.Collector, th theme.Theme, position int) *Model {
	return &Model{
		collector: c,
		th:        th,
		snap:      c.Sample(),
		position:  position,
	}
}

func (m *Model) sampleCmd() tea.Cmd {
	c := m.collector
	return tea.Tick(sampleEvery, func(time.Time) tea.Msg {
		return sampleMsg{snap: c.Sample()}
	})
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return m.sampleCmd() }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if s, ok := msg.(sampleMsg); ok {
		m.snap = s.snap
		return m, m.sampleCmd()
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	s := m.snap
	lines := []string{
		m.th.Panel.Accent.Render(s.Hostname),
		m.th.Panel.Body.Render(fmt.Sprintf("%s/%s, %d cpus", s.OS, s.Arch, s.NumCPU)),
		m.th.Panel.Body.Render("up " + timeutil.Uptime(s.Uptime)),
		m.th.Panel.Body.Render(fmt.Sprintf("load %.2f %.2f %.2f", s.Load1, s.Load5, s.Load15)),
		m.th.Panel.Body.Render(memLine(s.MemTotal, s.MemFree)),
	}
	return panel.Render(m.th.Panel, panel.Options{
		Symbol:   "⌂",
		Title:    "system",
		Position: m.position,
		Focused:  m.focused,
		Width:    m.width,
		Height:   m.height,
	}, strings.Join(lines, "\n"))
}

func memLine(total, free uint64) string {
	if total == 0 {
		return "mem n/a"
	}
	used := total - free
	return fmt.Sprintf("mem %s / %s", mib(used), mib(total))
}

func mib(b uint64) string {
	const mb = 1 << 20
	if b >= 10*1024*mb {
		return fmt.Sprintf("%.1fG", float64(b)/float64(1<<30))
	}
	return fmt.Sprintf("%dM", b/mb)
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused implements ui.Focusable.
func (m *Model) SetFocused(focused bool) { m.focused = focused }
