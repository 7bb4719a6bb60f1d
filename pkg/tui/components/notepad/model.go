// Package notepad renders the multi-tab notepad widget. Browse mode shows
// the rendered note with link markers; edit mode is a plain line editor over
// the raw markup. The cursor survives tab switches and restarts through the
// selection snapshots the pad persists per tab.
package notepad

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/notepad"
	"tableflip.dev/tabletop/pkg/richtext"
	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/keymap"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
)

// ID identifies the notepad widget in keymap scopes and emitted events.
const ID = "notepad"

// EditMsg enters edit mode on the active tab.
type EditMsg struct{}

// NewTabMsg opens a fresh tab.
type NewTabMsg struct{}

// CloseTabMsg closes the active tab.
type CloseTabMsg struct{}

// CycleMsg activates the tab delta positions away, wrapping.
type CycleMsg struct {
	Delta int
}

// YankMsg copies the active tab's content to the system clipboard.
type YankMsg struct{}

// Model is the notepad widget.
type Model struct {
	persistence store.Persistence
	th          theme.Theme
	pad         *notepad.Pad

	editing bool
	content []rune
	cursor  int
	scroll  int

	position int
	focused  bool
	width    int
	height   int
}

// NewModel hydrates tabs from the store.
func NewModel(p store.Persistence, th theme.Theme, position int) *Model {
	return &Model{
		persistence: p,
		th:          th,
		pad:         notepad.Hydrate(p),
		position:    position,
	}
}

// Keys returns the notepad shortcuts. Tab cycling stays live while editing
// so the cursor snapshot machinery is exercised mid-edit.
func Keys() []keymap.Binding {
	return []keymap.Binding{
		{Chord: "i", Widget: ID, Help: "edit note", Do: func() tea.Msg { return EditMsg{} }},
		{Chord: "t", Widget: ID, Help: "new tab", Do: func() tea.Msg { return NewTabMsg{} }},
		{Chord: "x", Widget: ID, Help: "close tab", Do: func() tea.Msg { return CloseTabMsg{} }},
		{Chord: "y", Widget: ID, Help: "copy note to clipboard", Do: func() tea.Msg { return YankMsg{} }},
		{Chord: "ctrl+alt+right", Widget: ID, WhileTyping: true, Help: "next note tab", Do: func() tea.Msg { return CycleMsg{Delta: 1} }},
		{Chord: "ctrl+alt+left", Widget: ID, WhileTyping: true, Help: "previous note tab", Do: func() tea.Msg { return CycleMsg{Delta: -1} }},
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Editing implements ui.Editing.
func (m *Model) Editing() bool { return m.editing }

// enterEdit loads the active tab into the editor, restoring the cursor from
// the tab's selection snapshot when it still resolves.
func (m *Model) enterEdit() {
	tab, _ := m.pad.Active()
	m.content = []rune(tab.Content)
	m.cursor = len(m.content)
	if tab.Selection != nil {
		doc := richtext.Parse(tab.Content)
		if off, ok := doc.OffsetForSnapshot(*tab.Selection); ok {
			m.cursor = off
		}
	}
	m.editing = true
}

// commitEdit writes the editor buffer and cursor snapshot back to the pad.
func (m *Model) commitEdit() tea.Cmd {
	content := string(m.content)
	m.pad.SetContent(content)
	doc := richtext.Parse(content)
	if snap, ok := doc.SnapshotAtOffset(m.cursor); ok {
		m.pad.SetSelection(&snap)
	} else {
		m.pad.SetSelection(nil)
	}
	return m.persist()
}

func (m *Model) leaveEdit() tea.Cmd {
	cmd := m.commitEdit()
	m.editing = false
	return cmd
}

func (m *Model) persist() tea.Cmd {
	if err := m.pad.Persist(m.persistence); err != nil {
		return events.ErrCmd(ID, err)
	}
	return nil
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case EditMsg:
		if !m.editing {
			m.enterEdit()
		}
	case NewTabMsg:
		if m.editing {
			m.commitEdit()
		}
		name := fmt.Sprintf("tab %d", len(m.pad.Tabs())+1)
		if _, err := m.pad.NewTab(name); err != nil {
			return m, events.ErrCmd(ID, err)
		}
		if m.editing {
			m.enterEdit() // reload editor on the new tab
		}
		return m, m.persist()
	case CloseTabMsg:
		tab, _ := m.pad.Active()
		if err := m.pad.CloseTab(tab.ID); err != nil {
			return m, events.ErrCmd(ID, err)
		}
		if m.editing {
			m.enterEdit()
		}
		return m, m.persist()
	case CycleMsg:
		var cmd tea.Cmd
		if m.editing {
			cmd = m.commitEdit()
		}
		m.pad.Cycle(msg.Delta)
		if m.editing {
			m.enterEdit()
		}
		return m, cmd
	case YankMsg:
		tab, _ := m.pad.Active()
		if err := clipboard.WriteAll(tab.Content); err != nil {
			return m, events.ErrCmd(ID, err)
		}
		return m, events.StatusCmd(ID, fmt.Sprintf("copied %q to clipboard", tab.Name))
	case events.StoreChangedMsg:
		if msg.Key == store.KeyNotepad && !m.editing {
			m.pad = notepad.Hydrate(m.persistence)
		}
	case tea.KeyPressMsg:
		if m.editing {
			return m, m.handleEditKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleEditKey(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		return m.leaveEdit()
	case "enter":
		m.insert('\n')
	case "backspace":
		if m.cursor > 0 {
			m.content = append(m.content[:m.cursor-1], m.content[m.cursor:]...)
			m.cursor--
		}
	case "delete":
		if m.cursor < len(m.content) {
			m.content = append(m.content[:m.cursor], m.content[m.cursor+1:]...)
		}
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.content) {
			m.cursor++
		}
	case "up":
		m.moveLine(-1)
	case "down":
		m.moveLine(1)
	case "home":
		m.cursor = m.lineStart(m.cursor)
	case "end":
		m.cursor = m.lineEnd(m.cursor)
	default:
		if key.Text != "" {
			for _, r := range key.Text {
				m.insert(r)
			}
		}
	}
	return nil
}

func (m *Model) insert(r rune) {
	m.content = append(m.content[:m.cursor], append([]rune{r}, m.content[m.cursor:]...)...)
	m.cursor++
}

func (m *Model) lineStart(at int) int {
	for at > 0 && m.content[at-1] != '\n' {
		at--
	}
	return at
}

func (m *Model) lineEnd(at int) int {
	for at < len(m.content) && m.content[at] != '\n' {
		at++
	}
	return at
}

// moveLine moves the cursor a line up or down, keeping the column when the
// target line is long enough.
func (m *Model) moveLine(delta int) {
	start := m.lineStart(m.cursor)
	col := m.cursor - start
	if delta < 0 {
		if start == 0 {
			return
		}
		prevStart := m.lineStart(start - 1)
		m.cursor = min(prevStart+col, start-1)
		return
	}
	end := m.lineEnd(m.cursor)
	if end == len(m.content) {
		return
	}
	nextStart := end + 1
	m.cursor = min(nextStart+col, m.lineEnd(nextStart))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// View implements ui.Component.
func (m *Model) View() string {
	lines := []string{m.tabBar()}
	bodyRows := m.height - 4 // frame, padding row, tab bar
	if bodyRows < 1 {
		bodyRows = 1
	}
	if m.editing {
		lines = append(lines, m.editorLines(bodyRows)...)
	} else {
		tab, _ := m.pad.Active()
		doc := richtext.Parse(tab.Content)
		rendered := strings.Split(doc.RenderText(), "\n")
		if len(rendered) > bodyRows {
			rendered = rendered[:bodyRows]
		}
		for _, line := range rendered {
			lines = append(lines, m.th.Panel.Body.Render(line))
		}
	}
	return panel.Render(m.th.Panel, panel.Options{
		Symbol:   "✎",
		Title:    "notepad",
		Position: m.position,
		Focused:  m.focused,
		Width:    m.width,
		Height:   m.height,
	}, strings.Join(lines, "\n"))
}

func (m *Model) tabBar() string {
	tabs := m.pad.Tabs()
	_, active := m.pad.Active()
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := tab.Name
		if i == active {
			label = m.th.Panel.Accent.Render("[" + label + "]")
		} else {
			label = m.th.Panel.Muted.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "")
}

// editorLines renders the raw markup with a visible cursor cell, scrolled so
// the cursor line stays inside the body.
func (m *Model) editorLines(rows int) []string {
	text := string(m.content)
	cursorLine := strings.Count(text[:runeIndex(text, m.cursor)], "\n")
	if cursorLine < m.scroll {
		m.scroll = cursorLine
	}
	if cursorLine >= m.scroll+rows {
		m.scroll = cursorLine - rows + 1
	}

	all := strings.Split(text, "\n")
	out := make([]string, 0, rows)
	offset := 0
	for i, line := range all {
		lineRunes := len([]rune(line))
		if i >= m.scroll && len(out) < rows {
			if i == cursorLine {
				out = append(out, m.renderCursorLine(line, m.cursor-offset))
			} else {
				out = append(out, m.th.Panel.Body.Render(line))
			}
		}
		offset += lineRunes + 1
	}
	return out
}

func (m *Model) renderCursorLine(line string, col int) string {
	runes := []rune(line)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	before := string(runes[:col])
	at := " "
	after := ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}
	return m.th.Panel.Body.Render(before) +
		m.th.Panel.Accent.Reverse(true).Render(at) +
		m.th.Panel.Body.Render(after)
}

// runeIndex converts a rune offset into a byte index of s.
func runeIndex(s string, runeOff int) int {
	n := 0
	for i := range s {
		if n == runeOff {
			return i
		}
		n++
	}
	return len(s)
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused implements ui.Focusable. Losing focus commits any in-progress
// edit so nothing is lost.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused && m.editing {
		// Persist failure here has nowhere to report; the next explicit
		// action will surface it.
		_ = m.leaveEdit()
	}
}

// Pad exposes the tab state for tests.
func (m *Model) Pad() *notepad.Pad { return m.pad }
