// Package keymap routes key chords to registered actions with three
// precedence rules: escape always fires, typing into a text field suppresses
// everything except escape and tab navigation, and widget-scoped bindings
// fire only while that widget holds focus.
//
// Chords are matched exactly by their Bubble Tea string form ("a", "esc",
// "ctrl+alt+left"), so a modifier chord never triggers a plain-key binding;
// a shortcut that wants a modifier simply registers the modified chord.
package keymap

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Context describes the input state a chord arrives in.
type Context struct {
	// Typing is true while a text input owns the keyboard.
	Typing bool
	// Focused is the id of the widget holding focus, empty when none.
	Focused string
}

// Binding maps one chord to an action.
type Binding struct {
	// Chord is the exact key string, e.g. "a", "esc", "ctrl+alt+right".
	Chord string
	// Widget scopes the binding to a focused widget; empty means global.
	Widget string
	// WhileTyping lets the binding fire while a text input owns the
	// keyboard. Escape chords always behave as if this were set.
	WhileTyping bool
	// Help is the one-line description shown in the keys table.
	Help string
	// Do produces the message dispatched when the binding fires.
	Do func() tea.Msg
}

// Router dispatches chords to bindings.
type Router struct {
	bindings map[string][]Binding
	filled   func(position int) bool
	digits   func(position int) tea.Msg
}

// New returns an empty router.
func New() *Router {
	return &Router{bindings: make(map[string][]Binding)}
}

// Bind registers a binding. Later registrations of the same chord and scope
// win, matching how widgets re-register on remount.
func (r *Router) Bind(b Binding) {
	if b.Chord == "" || b.Do == nil {
		return
	}
	list := r.bindings[b.Chord]
	for i := range list {
		if list[i].Widget == b.Widget {
			list[i] = b
			r.bindings[b.Chord] = list
			return
		}
	}
	r.bindings[b.Chord] = append(list, b)
}

// BindDigits routes the digit keys 1..9 to widget positions. A digit fires
// only when filled reports the position holds a widget; otherwise the press
// is ignored.
func (r *Router) BindDigits(filled func(position int) bool, do func(position int) tea.Msg) {
	r.filled = filled
	r.digits = do
}

// Route resolves a chord against the context. It reports false when no
// binding fires, which is not an error: unmapped chords are ignored.
func (r *Router) Route(chord string, ctx Context) (tea.Cmd, bool) {
	if pos, ok := digitPosition(chord); ok && r.digits != nil {
		if ctx.Typing {
			return nil, false
		}
		if r.filled != nil && !r.filled(pos) {
			return nil, false
		}
		msg := r.digits
		return func() tea.Msg { return msg(pos) }, true
	}

	b, ok := r.lookup(chord, ctx.Focused)
	if !ok {
		return nil, false
	}
	if ctx.Typing && !b.WhileTyping && chord != "esc" {
		return nil, false
	}
	do := b.Do
	return func() tea.Msg { return do() }, true
}

// lookup prefers a binding scoped to the focused widget over a global one.
func (r *Router) lookup(chord, focused string) (Binding, bool) {
	list := r.bindings[chord]
	var global Binding
	var haveGlobal bool
	for _, b := range list {
		if b.Widget == "" {
			global = b
			haveGlobal = true
			continue
		}
		if focused != "" && b.Widget == focused {
			return b, true
		}
	}
	return global, haveGlobal
}

// Bindings returns every registered binding, for the keys table and help
// overlay.
func (r *Router) Bindings() []Binding {
	var out []Binding
	for _, list := range r.bindings {
		out = append(out, list...)
	}
	return out
}

func digitPosition(chord string) (int, bool) {
	if len(chord) != 1 || strings.Contains(chord, "+") {
		return 0, false
	}
	n, err := strconv.Atoi(chord)
	if err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n, true
}
