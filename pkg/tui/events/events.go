// Package events defines the typed Bubble Tea messages widgets use to talk
// to each other without direct coupling. Messages carry a Describe method so
// the debug event viewer can log them.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/focus"
	"tableflip.dev/tabletop/pkg/timeutil"
	"tableflip.dev/tabletop/pkg/wallpaper"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// FocusChangedMsg is broadcast after the focus arbiter moves widget focus.
type FocusChangedMsg struct {
	Position int
	Mode     focus.Mode
}

// Describe renders the focus change in a human-friendly format for logs.
func (m FocusChangedMsg) Describe() string {
	return fmt.Sprintf(`position:%d mode:%q`, m.Position, m.Mode)
}

// FocusChangedCmd wraps FocusChangedMsg in a tea.Cmd.
func FocusChangedCmd(position int, mode focus.Mode) tea.Cmd {
	return func() tea.Msg {
		return FocusChangedMsg{Position: position, Mode: mode}
	}
}

// WallpaperChangedMsg announces a new wallpaper and its computed palette so
// the color-reactive theme layer can restyle everything.
type WallpaperChangedMsg struct {
	Wallpaper wallpaper.Wallpaper
	Palette   wallpaper.Palette
}

// Describe implements the logging helper.
func (m WallpaperChangedMsg) Describe() string {
	return fmt.Sprintf(`kind:%q source:%q colors:%d`, m.Wallpaper.Kind, m.Wallpaper.Source, len(m.Palette.Colors))
}

// WallpaperChangedCmd wraps WallpaperChangedMsg in a tea.Cmd.
func WallpaperChangedCmd(w wallpaper.Wallpaper, p wallpaper.Palette) tea.Cmd {
	return func() tea.Msg {
		return WallpaperChangedMsg{Wallpaper: w, Palette: p}
	}
}

// ClockFormatToggledMsg announces the clock format preference changed.
type ClockFormatToggledMsg struct {
	Format timeutil.Format
}

// Describe implements the logging helper.
func (m ClockFormatToggledMsg) Describe() string {
	return fmt.Sprintf(`format:%q`, m.Format)
}

// ClockFormatToggledCmd wraps ClockFormatToggledMsg in a tea.Cmd.
func ClockFormatToggledCmd(f timeutil.Format) tea.Cmd {
	return func() tea.Msg {
		return ClockFormatToggledMsg{Format: f}
	}
}

// SettingsRequestMsg asks the root model to open the settings overlay.
type SettingsRequestMsg struct{}

// Describe implements the logging helper.
func (m SettingsRequestMsg) Describe() string { return "open settings" }

// HelpRequestMsg asks the root model to open the help overlay.
type HelpRequestMsg struct{}

// Describe implements the logging helper.
func (m HelpRequestMsg) Describe() string { return "open help" }

// StoreChangedMsg is broadcast when a persisted key changes on disk outside
// the running process, so widgets can rehydrate.
type StoreChangedMsg struct {
	Key string
}

// Describe implements the logging helper.
func (m StoreChangedMsg) Describe() string {
	return fmt.Sprintf(`key:%q`, m.Key)
}

// StatusMsg updates the status bar text.
type StatusMsg struct {
	Component ComponentID
	Text      string
}

// Describe implements the logging helper.
func (m StatusMsg) Describe() string {
	return fmt.Sprintf(`component:%q text:%q`, m.Component, m.Text)
}

// StatusCmd wraps StatusMsg in a tea.Cmd.
func StatusCmd(component ComponentID, text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Component: component, Text: text}
	}
}

// ErrMsg surfaces a non-fatal error to the status bar.
type ErrMsg struct {
	Component ComponentID
	Err       error
}

// Describe implements the logging helper.
func (m ErrMsg) Describe() string {
	return fmt.Sprintf(`component:%q err:%q`, m.Component, m.Err)
}

// ErrCmd wraps ErrMsg in a tea.Cmd.
func ErrCmd(component ComponentID, err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Component: component, Err: err}
	}
}
