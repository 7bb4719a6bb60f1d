// Package todoview renders the todo list widget: active items above a muted
// completed section, with inline add and edit via a text input.
package todoview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/todo"
	"tableflip.dev/tabletop/pkg/tui/components/panel"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/keymap"
	"tableflip.dev/tabletop/pkg/tui/theme"
	"tableflip.dev/tabletop/pkg/tui/ui"
)

// ID identifies the todo widget in keymap scopes and emitted events.
const ID = "todo"

// StartAddMsg opens the input to append a new item.
type StartAddMsg struct{}

// StartEditMsg opens the input pre-filled with the item under the cursor.
type StartEditMsg struct{}

// ActivateMsg toggles done on the item under the cursor.
type ActivateMsg struct{}

// DeleteMsg removes the item under the cursor.
type DeleteMsg struct{}

// CursorMsg moves the cursor by delta.
type CursorMsg struct {
	Delta int
}

// MoveMsg reorders the item under the cursor by delta.
type MoveMsg struct {
	Delta int
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

// Model is the todo widget.
type Model struct {
	persistence store.Persistence
	th          theme.Theme
	list        *todo.List

	cursor int
	mode   inputMode
	editID string
	input  textinput.Model

	position int
	focused  bool
	width    int
	height   int
}

// NewModel hydrates the list from the store.
func NewModel(p store.Persistence, th theme.Theme, position int) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "what needs doing?"
	return &Model{
		persistence: p,
		th:          th,
		list:        todo.Hydrate(p),
		input:       in,
		position:    position,
	}
}

// Keys returns the todo shortcuts, active while the widget has focus.
func Keys() []keymap.Binding {
	return []keymap.Binding{
		{Chord: "a", Widget: ID, Help: "add todo", Do: func() tea.Msg { return StartAddMsg{} }},
		{Chord: "e", Widget: ID, Help: "edit todo", Do: func() tea.Msg { return StartEditMsg{} }},
		{Chord: "enter", Widget: ID, Help: "toggle done", Do: func() tea.Msg { return ActivateMsg{} }},
		{Chord: "d", Widget: ID, Help: "delete todo", Do: func() tea.Msg { return DeleteMsg{} }},
		{Chord: "j", Widget: ID, Help: "cursor down", Do: func() tea.Msg { return CursorMsg{Delta: 1} }},
		{Chord: "k", Widget: ID, Help: "cursor up", Do: func() tea.Msg { return CursorMsg{Delta: -1} }},
		{Chord: "down", Widget: ID, Help: "cursor down", Do: func() tea.Msg { return CursorMsg{Delta: 1} }},
		{Chord: "up", Widget: ID, Help: "cursor up", Do: func() tea.Msg { return CursorMsg{Delta: -1} }},
		{Chord: "J", Widget: ID, Help: "move todo down", Do: func() tea.Msg { return MoveMsg{Delta: 1} }},
		{Chord: "K", Widget: ID, Help: "move todo up", Do: func() tea.Msg { return MoveMsg{Delta: -1} }},
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Editing implements ui.Editing.
func (m *Model) Editing() bool { return m.mode != modeBrowse }

// ordered returns items in display order: active first, completed after.
func (m *Model) ordered() []todo.Item {
	active, completed := m.list.Split()
	return append(active, completed...)
}

func (m *Model) current() (todo.Item, bool) {
	items := m.ordered()
	if m.cursor < 0 || m.cursor >= len(items) {
		return todo.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := m.list.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}

	switch msg := msg.(type) {
	case StartAddMsg:
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	case StartEditMsg:
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = item.ID
		m.input.SetValue(item.Text)
		return m, m.input.Focus()
	case ActivateMsg:
		if item, ok := m.current(); ok {
			_ = m.list.Toggle(item.ID)
			return m, m.persist()
		}
	case DeleteMsg:
		if item, ok := m.current(); ok {
			_ = m.list.Remove(item.ID)
			m.clampCursor()
			return m, m.persist()
		}
	case CursorMsg:
		m.cursor += msg.Delta
		m.clampCursor()
	case MoveMsg:
		if item, ok := m.current(); ok {
			_ = m.list.Move(item.ID, msg.Delta)
			m.cursor += msg.Delta
			m.clampCursor()
			return m, m.persist()
		}
	case events.StoreChangedMsg:
		if msg.Key == store.KeyTodos {
			m.list = todo.Hydrate(m.persistence)
			m.clampCursor()
		}
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			return m, m.commitInput()
		case "esc":
			m.leaveInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitInput() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	mode := m.mode
	m.leaveInput()
	if text == "" {
		return nil
	}
	if mode == modeEdit {
		_ = m.list.Edit(m.editID, text)
		return m.persist()
	}
	if _, err := m.list.Add(text); err != nil {
		return events.ErrCmd(ID, err)
	}
	return m.persist()
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) persist() tea.Cmd {
	if err := m.list.Persist(m.persistence); err != nil {
		return events.ErrCmd(ID, err)
	}
	return nil
}

// View implements ui.Component.
func (m *Model) View() string {
	var lines []string
	active, completed := m.list.Split()

	row := func(idx int, item todo.Item) string {
		mark := "☐"
		style := m.th.Panel.Body
		if item.Done {
			mark = "☑"
			style = m.th.Panel.Done
		}
		prefix := "  "
		if m.focused && idx == m.cursor && m.mode == modeBrowse {
			prefix = m.th.Panel.Accent.Render("» ")
		}
		return prefix + style.Render(mark+" "+item.Text)
	}

	idx := 0
	for _, item := range active {
		lines = append(lines, row(idx, item))
		idx++
	}
	if len(completed) > 0 {
		lines = append(lines, m.th.Panel.Muted.Render(fmt.Sprintf("done (%d)", len(completed))))
		for _, item := range completed {
			lines = append(lines, row(idx, item))
			idx++
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.th.Panel.Muted.Render("nothing yet, press a"))
	}
	if m.mode != modeBrowse {
		lines = append(lines, m.input.View())
	}

	return panel.Render(m.th.Panel, panel.Options{
		Symbol:   "☑",
		Title:    "todo",
		Position: m.position,
		Focused:  m.focused,
		Width:    m.width,
		Height:   m.height,
	}, strings.Join(lines, "\n"))
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused implements ui.Focusable.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused && m.mode != modeBrowse {
		m.leaveInput()
	}
}

// List exposes the todo list for tests.
func (m *Model) List() *todo.List { return m.list }
