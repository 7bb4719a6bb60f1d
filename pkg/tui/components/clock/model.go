// Package clock renders the time, date, and pomodoro timer widget.
package clock

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/pomodoro"
	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/timeutil"
	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/keymap"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
)

// ID identifies the clock widget in keymap scopes and emitted events.
const ID = "clock"

// TickMsg advances the clock and any running pomodoro by one second.
type TickMsg struct {
	Time time.Time
}

// ToggleRunMsg starts or pauses the pomodoro timer.
type ToggleRunMsg struct{}

// SkipMsg ends the current pomodoro period early.
type SkipMsg struct{}

// ResetMsg restarts the current pomodoro period, paused.
type ResetMsg struct{}

// Model is the clock widget.
type Model struct {
	persistence store.Persistence
	th          theme.Theme

	format timeutil.Format
	timer  *pomodoro.Timer
	now    time.Time

	position int
	focused  bool
	width    int
	height   int
}

// NewModel hydrates the clock format and pomodoro snapshot from the store.
func NewModel(p store.Persistence, th theme.Theme, position int) *Model {
	return &Model{
		persistence: p,
		th:          th,
		format:      timeutil.LoadFormat(p),
		timer:       pomodoro.Hydrate(p),
		now:         time.Now(),
		position:    position,
	}
}

// Keys returns the pomodoro shortcuts, active while the clock has focus.
func Keys() []keymap.Binding {
	return []keymap.Binding{
		{Chord: "space", Widget: ID, Help: "start / pause pomodoro", Do: func() tea.Msg { return ToggleRunMsg{} }},
		{Chord: "k", Widget: ID, Help: "skip pomodoro period", Do: func() tea.Msg { return SkipMsg{} }},
		{Chord: "r", Widget: ID, Help: "reset pomodoro period", Do: func() tea.Msg { return ResetMsg{} }},
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return tick() }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = msg.Time
		if m.timer.Running() && m.timer.Tick(time.Second) {
			m.persist()
			return m, tea.Batch(tick(), events.StatusCmd(ID, transitionStatus(m.timer.Mode())))
		}
		return m, tick()
	case ToggleRunMsg:
		m.timer.Toggle()
		m.persist()
	case SkipMsg:
		m.timer.Skip()
		m.persist()
		return m, events.StatusCmd(ID, transitionStatus(m.timer.Mode()))
	case ResetMsg:
		m.timer.Reset()
		m.persist()
	case events.ClockFormatToggledMsg:
		m.format = msg.Format
	case events.StoreChangedMsg:
		switch msg.Key {
		case store.KeyPomodoro:
			m.timer = pomodoro.Hydrate(m.persistence)
		case store.KeyClock:
			m.format = timeutil.LoadFormat(m.persistence)
		}
	}
	return m, nil
}

func (m *Model) persist() {
	_ = m.timer.Persist(m.persistence)
}

// View implements ui.Component.
func (m *Model) View() string {
	body := strings.Join([]string{
		m.th.Panel.Accent.Render(m.format.Clock(m.now)),
		m.th.Panel.Body.Render(m.now.Format("Mon Jan 2")),
		"",
		m.pomodoroLine(),
		m.th.Panel.Muted.Render(cycleDots(m.timer.CompletedWork())),
	}, "\n")
	return panel.Render(m.th.Panel, panel.Options{
		Symbol:   "◷",
		Title:    "clock",
		Position: m.position,
		Focused:  m.focused,
		Width:    m.width,
		Height:   m.height,
	}, body)
}

func (m *Model) pomodoroLine() string {
	state := "paused"
	style := m.th.Panel.Muted
	if m.timer.Running() {
		state = "running"
		style = m.th.Panel.Body
	}
	return style.Render(fmt.Sprintf("%s %s %s",
		m.timer.Mode(), timeutil.Countdown(m.timer.Remaining()), state))
}

// cycleDots marks completed work periods within the current long-break cycle.
func cycleDots(completed int) string {
	done := completed % pomodoro.WorkPeriodsPerCycle
	if done == 0 && completed > 0 {
		done = pomodoro.WorkPeriodsPerCycle
	}
	return strings.Repeat("●", done) + strings.Repeat("○", pomodoro.WorkPeriodsPerCycle-done)
}

func transitionStatus(m pomodoro.Mode) string {
	return fmt.Sprintf("pomodoro: %s started", m)
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused implements ui.Focusable.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Timer exposes the pomodoro state for tests.
func (m *Model) Timer() *pomodoro.Timer { return m.timer }
