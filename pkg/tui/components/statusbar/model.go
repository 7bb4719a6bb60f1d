// Package statusbar renders the single-line footer: transient status text on
// the left, the focus mode and help hint on the right.
package statusbar

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
)

// statusFor is how long a transient status stays visible.
const statusFor = 5 * time.Second

// expireMsg clears the status text set at the matching time.
type expireMsg struct {
	setAt time.Time
}

// Model is the footer bar.
type Model struct {
	th theme.Theme

	status    string
	setAt     time.Time
	modeLabel string

	width  int
	height int
}

// New returns an empty footer.
func New(th theme.Theme) *Model {
	return &Model{th: th}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) show(text string) tea.Cmd {
	m.status = text
	m.setAt = time.Now()
	setAt := m.setAt
	return tea.Tick(statusFor, func(time.Time) tea.Msg {
		return expireMsg{setAt: setAt}
	})
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.StatusMsg:
		return m, m.show(msg.Text)
	case events.ErrMsg:
		return m, m.show("error: " + msg.Err.Error())
	case events.FocusChangedMsg:
		if msg.Position == 0 {
			m.modeLabel = ""
		} else {
			m.modeLabel = msg.Mode.String()
		}
	case expireMsg:
		if msg.setAt.Equal(m.setAt) {
			m.status = ""
		}
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	left := m.th.Footer.Status.Render(m.status)
	right := m.th.Footer.Mode.Render(m.modeLabel) + " " +
		m.th.Footer.Help.Render("? help  s settings  q quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
