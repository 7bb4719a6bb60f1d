package glyph

import "fmt"

// Glyph pairs a key or symbol with its meaning, backing the keys table and
// the in-app help overlay.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Widget  bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs lists the widget symbols and keyboard shortcuts the
// dashboard ships with.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 24)

	g = append(g, Glyph{
		Symbol:  "◷",
		Meaning: "clock / pomodoro",
		Widget:  true,
	}, Glyph{
		Symbol:  "☁",
		Meaning: "weather",
		Widget:  true,
	}, Glyph{
		Symbol:  "⌂",
		Meaning: "system info",
		Widget:  true,
	}, Glyph{
		Symbol:  "☑",
		Meaning: "todo list",
		Widget:  true,
	}, Glyph{
		Symbol:  "✎",
		Meaning: "notepad",
		Widget:  true,
	}, Glyph{
		Key:     "1-9",
		Meaning: "focus widget at position",
	}, Glyph{
		Key:     "tab / shift+tab",
		Meaning: "focus next / previous widget",
	}, Glyph{
		Key:     "esc",
		Meaning: "leave editing, close overlay",
	}, Glyph{
		Key:     "?",
		Meaning: "help overlay",
	}, Glyph{
		Key:     "s",
		Meaning: "settings overlay",
	}, Glyph{
		Key:     "c",
		Meaning: "toggle 12/24 hour clock",
	}, Glyph{
		Key:     "space",
		Meaning: "start/pause pomodoro (clock focused)",
	}, Glyph{
		Key:     "k",
		Meaning: "skip pomodoro period (clock focused)",
	}, Glyph{
		Key:     "r",
		Meaning: "reset pomodoro period (clock focused)",
	}, Glyph{
		Key:     "a",
		Meaning: "add todo (todo focused)",
	}, Glyph{
		Key:     "enter",
		Meaning: "toggle todo done (todo focused)",
	}, Glyph{
		Key:     "e",
		Meaning: "edit todo (todo focused)",
	}, Glyph{
		Key:     "d",
		Meaning: "delete todo (todo focused)",
	}, Glyph{
		Key:     "J / K",
		Meaning: "reorder todo down / up (todo focused)",
	}, Glyph{
		Key:     "i",
		Meaning: "edit notepad (notepad focused)",
	}, Glyph{
		Key:     "ctrl+alt+left/right",
		Meaning: "cycle notepad tabs",
	}, Glyph{
		Key:     "t",
		Meaning: "new notepad tab (notepad focused)",
	}, Glyph{
		Key:     "x",
		Meaning: "close notepad tab (notepad focused)",
	}, Glyph{
		Key:     "y",
		Meaning: "copy note to clipboard (notepad focused)",
	}, Glyph{
		Key:     "q",
		Meaning: "quit",
	})

	return g
}

func (g Glyph) String() string {
	if g.Symbol != "" {
		return g.Symbol
	}
	return g.Key
}
