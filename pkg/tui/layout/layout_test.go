package layout

import (
	"path/filepath"
	"testing"

	"tableflip.dev/tabletop/pkg/store"
)

type testConfig struct{ path string }

func (t testConfig) BasePath() string { return t.path }

func testStore(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: filepath.Join(t.TempDir(), "db")})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaultArrangement(t *testing.T) {
	slots := Default()
	if len(slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(slots))
	}
	if WidgetAt(slots, 1) != WidgetClock || WidgetAt(slots, 5) != WidgetNotepad {
		t.Fatalf("unexpected defaults: %v", slots)
	}
	if Filled(slots, 6) {
		t.Fatal("slot 6 should be empty")
	}
	if Rows(slots) != 2 {
		t.Fatalf("got %d rows, want 2", Rows(slots))
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	p := testStore(t)
	slots := Load(p)
	if WidgetAt(slots, 4) != WidgetTodo {
		t.Fatalf("missing key should yield defaults, got %v", slots)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := testStore(t)
	slots := Default()
	slots[0].Widget = WidgetNotepad
	slots[4].Widget = WidgetClock
	if err := Save(p, slots); err != nil {
		t.Fatal(err)
	}
	got := Load(p)
	if WidgetAt(got, 1) != WidgetNotepad || WidgetAt(got, 5) != WidgetClock {
		t.Fatalf("round trip lost arrangement: %v", got)
	}
}

func TestLoadSanitizes(t *testing.T) {
	p := testStore(t)
	bad := []Slot{
		{Position: 0, Widget: WidgetClock},
		{Position: 9, Widget: WidgetTodo},
		{Position: 2, Widget: "spreadsheet"},
		{Position: 3, Widget: WidgetTodo},
		{Position: 3, Widget: WidgetClock},
	}
	if err := p.SetJSON(store.KeyWidgets, bad); err != nil {
		t.Fatal(err)
	}
	got := Load(p)
	if len(got) != 6 {
		t.Fatalf("got %d slots, want 6", len(got))
	}
	if WidgetAt(got, 2) != WidgetWeather {
		t.Fatalf("unknown widget should fall back to default, got %q", WidgetAt(got, 2))
	}
	if WidgetAt(got, 3) != WidgetTodo {
		t.Fatalf("first of duplicate positions should win, got %q", WidgetAt(got, 3))
	}
}

func TestPosition(t *testing.T) {
	slots := Default()
	if got := Position(slots, WidgetTodo); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if got := Position(slots, Widget("spreadsheet")); got != 0 {
		t.Fatalf("got %d, want 0 for absent widget", got)
	}
}

func TestCellAt(t *testing.T) {
	slots := Default() // 3x2
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 1},
		{29, 9, 1},
		{30, 0, 2},
		{60, 0, 3},
		{0, 10, 4},
		{89, 19, 6},
		{90, 0, 0}, // remainder margin
		{0, 20, 0}, // below grid
		{-1, 0, 0}, // outside
	}
	for _, tc := range tests {
		if got := CellAt(slots, 90, 20, tc.x, tc.y); got != tc.want {
			t.Errorf("CellAt(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCellAtTinyTerminal(t *testing.T) {
	if got := CellAt(Default(), 2, 1, 0, 0); got != 0 {
		t.Fatalf("got %d, want 0 for degenerate area", got)
	}
}
