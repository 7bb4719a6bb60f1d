package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is implemented by widgets that change appearance or behavior
// while holding dashboard focus.
type Focusable interface {
	SetFocused(bool)
}

// Editing is implemented by widgets that own the keyboard while the user is
// typing into them; the shortcut router suppresses plain-key bindings then.
type Editing interface {
	Editing() bool
}
