package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type firedMsg struct{ name string }

func fire(name string) func() tea.Msg {
	return func() tea.Msg { return firedMsg{name} }
}

func mustFire(t *testing.T, cmd tea.Cmd, ok bool, want string) {
	t.Helper()
	if !ok || cmd == nil {
		t.Fatalf("expected %q to fire", want)
	}
	got, isFired := cmd().(firedMsg)
	if !isFired || got.name != want {
		t.Fatalf("fired %v, want %q", got, want)
	}
}

func TestGlobalBinding(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "q", Do: fire("quit")})

	cmd, ok := r.Route("q", Context{})
	mustFire(t, cmd, ok, "quit")

	if _, ok := r.Route("z", Context{}); ok {
		t.Fatal("unmapped chord should not fire")
	}
}

func TestScopedBeatsGlobal(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "r", Do: fire("global")})
	r.Bind(Binding{Chord: "r", Widget: "clock", Do: fire("clock")})

	cmd, ok := r.Route("r", Context{Focused: "clock"})
	mustFire(t, cmd, ok, "clock")

	cmd, ok = r.Route("r", Context{Focused: "todo"})
	mustFire(t, cmd, ok, "global")

	cmd, ok = r.Route("r", Context{})
	mustFire(t, cmd, ok, "global")
}

func TestScopedOnlyNeedsFocus(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "k", Widget: "clock", Do: fire("pause")})

	if _, ok := r.Route("k", Context{Focused: "todo"}); ok {
		t.Fatal("scoped binding fired without focus")
	}
	cmd, ok := r.Route("k", Context{Focused: "clock"})
	mustFire(t, cmd, ok, "pause")
}

func TestTypingSuppression(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "a", Do: fire("add")})
	r.Bind(Binding{Chord: "esc", Do: fire("escape")})
	r.Bind(Binding{Chord: "tab", WhileTyping: true, Do: fire("next-tab")})
	r.Bind(Binding{Chord: "ctrl+alt+right", WhileTyping: true, Do: fire("cycle")})

	if _, ok := r.Route("a", Context{Typing: true}); ok {
		t.Fatal("plain binding fired while typing")
	}

	cmd, ok := r.Route("esc", Context{Typing: true})
	mustFire(t, cmd, ok, "escape")

	cmd, ok = r.Route("tab", Context{Typing: true})
	mustFire(t, cmd, ok, "next-tab")

	cmd, ok = r.Route("ctrl+alt+right", Context{Typing: true})
	mustFire(t, cmd, ok, "cycle")
}

func TestExactChordMatching(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "t", Do: fire("new-tab")})

	if _, ok := r.Route("ctrl+t", Context{}); ok {
		t.Fatal("modified chord matched plain binding")
	}
	if _, ok := r.Route("alt+t", Context{}); ok {
		t.Fatal("modified chord matched plain binding")
	}
}

func TestDigits(t *testing.T) {
	r := New()
	filled := map[int]bool{1: true, 4: true}
	r.BindDigits(
		func(pos int) bool { return filled[pos] },
		func(pos int) tea.Msg { return firedMsg{name: "focus"} },
	)

	cmd, ok := r.Route("1", Context{})
	mustFire(t, cmd, ok, "focus")

	if _, ok := r.Route("2", Context{}); ok {
		t.Fatal("digit for empty slot fired")
	}
	if _, ok := r.Route("0", Context{}); ok {
		t.Fatal("zero is not a position")
	}
	if _, ok := r.Route("1", Context{Typing: true}); ok {
		t.Fatal("digit fired while typing")
	}
}

func TestRebindReplaces(t *testing.T) {
	r := New()
	r.Bind(Binding{Chord: "s", Do: fire("old")})
	r.Bind(Binding{Chord: "s", Do: fire("new")})

	cmd, ok := r.Route("s", Context{})
	mustFire(t, cmd, ok, "new")

	if n := len(r.Bindings()); n != 1 {
		t.Fatalf("got %d bindings, want 1", n)
	}
}
