package app

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/tui/components/settings"
	"tableflip.dev/tabletop/pkg/tui/events"
	"tableflip.dev/tabletop/pkg/tui/layout"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string { return t.path }

func testModel(t *testing.T) *Model {
	t.Helper()
	p, err := store.Load(testConfig{path: filepath.Join(t.TempDir(), "db")})
	if err != nil {
		t.Fatal(err)
	}
	m := New(p)
	m.width = 120
	m.height = 31
	m.applySizes()
	return m
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// drain applies a command's message back into the model, following batches.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	switch batch := msg.(type) {
	case tea.BatchMsg:
		for _, c := range batch {
			drain(t, m, c)
		}
	default:
		if msg == nil {
			return
		}
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func key(chord string) tea.KeyPressMsg {
	switch chord {
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	default:
		r := []rune(chord)[0]
		return tea.KeyPressMsg{Code: r, Text: chord}
	}
}

func TestViewRendersAllWidgets(t *testing.T) {
	m := testModel(t)
	view := stripANSI(m.View())

	for _, want := range []string{"clock", "weather", "system", "todo", "notepad", "empty"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view; view=%q", want, view)
		}
	}
}

func TestDigitFocusesWidget(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("4"))
	drain(t, m, cmd)

	pos, ok := m.arbiter.Focused()
	if !ok || pos != 4 {
		t.Fatalf("focus = %d, %v; want 4", pos, ok)
	}
	if got := m.focusedID(); got != "todo" {
		t.Fatalf("focused id = %q, want todo", got)
	}
}

func TestDigitForEmptySlotIgnored(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("6"))
	drain(t, m, cmd)

	if _, ok := m.arbiter.Focused(); ok {
		t.Fatal("empty slot should not take focus")
	}
}

func TestTabSkipsEmptySlots(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("5"))
	drain(t, m, cmd)

	_, cmd = m.Update(key("tab"))
	drain(t, m, cmd)

	pos, _ := m.arbiter.Focused()
	if pos != 1 {
		t.Fatalf("tab from 5 should wrap past empty slot 6 to 1, got %d", pos)
	}
}

func TestEscDropsFocus(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("1"))
	drain(t, m, cmd)

	_, cmd = m.Update(key("esc"))
	drain(t, m, cmd)

	if _, ok := m.arbiter.Focused(); ok {
		t.Fatal("esc should drop focus")
	}
}

func TestHoverSuppressedDuringKeyboardWindow(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("1"))
	drain(t, m, cmd)

	// Hover over position 2 right after a keyboard focus change.
	_, cmd = m.Update(tea.MouseMotionMsg{X: m.width / 2, Y: 0})
	drain(t, m, cmd)

	pos, _ := m.arbiter.Focused()
	if pos != 1 {
		t.Fatalf("hover inside the keyboard window moved focus to %d", pos)
	}
}

func TestClickOutsideGridIgnored(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.MouseClickMsg{X: m.width - 1, Y: m.height - 1, Button: tea.MouseLeft})
	drain(t, m, cmd)

	if _, ok := m.arbiter.Focused(); ok {
		t.Fatal("click outside the grid should not focus anything")
	}
}

func TestHelpOverlayOpensAndCloses(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("?"))
	drain(t, m, cmd)
	if m.helpOverlay == nil {
		t.Fatal("? should open help")
	}

	_, cmd = m.Update(key("esc"))
	drain(t, m, cmd)
	if m.helpOverlay != nil {
		t.Fatal("esc should close help")
	}
}

func TestSettingsOverlayOpensAndCloses(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("s"))
	drain(t, m, cmd)
	if m.settingsOpen == nil {
		t.Fatal("s should open settings")
	}

	_, cmd = m.Update(settings.ClosedMsg{})
	drain(t, m, cmd)
	if m.settingsOpen != nil {
		t.Fatal("ClosedMsg should dismiss settings")
	}
}

func TestClockFormatTogglePersists(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(key("c"))
	drain(t, m, cmd)

	var pref struct {
		Format string `json:"format"`
	}
	if !m.persistence.GetJSON(store.KeyClock, &pref) {
		t.Fatal("clock preference not persisted")
	}
	if pref.Format != "12h" {
		t.Fatalf("toggle from default 24h should persist 12h, got %q", pref.Format)
	}
}

func TestWallpaperChangeRebuildsWidgets(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(events.WallpaperChangedMsg{})
	drain(t, m, cmd)

	if len(m.widgets) != 5 {
		t.Fatalf("rebuild kept %d widgets, want 5", len(m.widgets))
	}
	if got := layout.WidgetAt(m.slots, 1); got != layout.WidgetClock {
		t.Fatalf("rebuild lost the arrangement: %q at 1", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "todo") {
		t.Fatalf("rebuilt view missing widgets; view=%q", view)
	}
}

func TestStoreChangeReloadsTodos(t *testing.T) {
	m := testModel(t)

	// Another writer adds a todo directly to the store.
	type item struct {
		ID   string `json:"id"`
		Text string `json:"text"`
		Done bool   `json:"done"`
	}
	if err := m.persistence.SetJSON(store.KeyTodos, []item{{ID: "x", Text: "from elsewhere"}}); err != nil {
		t.Fatal(err)
	}

	cmds := m.handleWatchEvent(store.Event{Type: store.EventKeyChanged, Key: store.KeyTodos})
	for _, c := range cmds {
		drain(t, m, c)
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "from elsewhere") {
		t.Fatalf("watch event should rehydrate the todo widget; view=%q", view)
	}
}
