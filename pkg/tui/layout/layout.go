// Package layout models the widget grid: which widget occupies which
// position, persistence of that arrangement, and the hit test that maps a
// terminal cell back to a grid position.
package layout

import (
	"tableflip.dev/tabletop/pkg/store"
)

// Widget identifies a widget kind occupying a slot.
type Widget string

const (
	WidgetClock   Widget = "clock"
	WidgetWeather Widget = "weather"
	WidgetSysinfo Widget = "sysinfo"
	WidgetTodo    Widget = "todo"
	WidgetNotepad Widget = "notepad"
	WidgetNone    Widget = ""
)

// Columns is the grid width. Rows follow from the slot count.
const Columns = 3

// Slot pairs a 1-based grid position with the widget living there.
type Slot struct {
	Position int    `json:"position"`
	Widget   Widget `json:"widget"`
}

// Default returns the out-of-box arrangement: five widgets and one empty
// slot on a 3x2 grid.
func Default() []Slot {
	return []Slot{
		{Position: 1, Widget: WidgetClock},
		{Position: 2, Widget: WidgetWeather},
		{Position: 3, Widget: WidgetSysinfo},
		{Position: 4, Widget: WidgetTodo},
		{Position: 5, Widget: WidgetNotepad},
		{Position: 6, Widget: WidgetNone},
	}
}

func known(w Widget) bool {
	switch w {
	case WidgetClock, WidgetWeather, WidgetSysinfo, WidgetTodo, WidgetNotepad, WidgetNone:
		return true
	}
	return false
}

// Load reads the persisted arrangement, falling back to Default when the
// stored value is missing or unusable. Slots with out-of-range positions,
// duplicate positions, or unknown widgets are replaced from the default.
func Load(p store.Persistence) []Slot {
	var saved []Slot
	if !p.GetJSON(store.KeyWidgets, &saved) {
		return Default()
	}
	slots := Default()
	seen := make(map[int]bool)
	for _, s := range saved {
		if s.Position < 1 || s.Position > len(slots) || seen[s.Position] || !known(s.Widget) {
			continue
		}
		seen[s.Position] = true
		slots[s.Position-1].Widget = s.Widget
	}
	return slots
}

// Save persists the arrangement.
func Save(p store.Persistence, slots []Slot) error {
	return p.SetJSON(store.KeyWidgets, slots)
}

// Filled reports whether the given position holds a widget.
func Filled(slots []Slot, position int) bool {
	return WidgetAt(slots, position) != WidgetNone
}

// WidgetAt returns the widget occupying a position, WidgetNone when the
// position is empty or out of range.
func WidgetAt(slots []Slot, position int) Widget {
	if position < 1 || position > len(slots) {
		return WidgetNone
	}
	return slots[position-1].Widget
}

// Position returns the position a widget occupies, 0 when absent.
func Position(slots []Slot, w Widget) int {
	for _, s := range slots {
		if s.Widget == w {
			return s.Position
		}
	}
	return 0
}

// Rows returns the grid height for a slot count.
func Rows(slots []Slot) int {
	return (len(slots) + Columns - 1) / Columns
}

// CellSize returns the terminal size of one grid cell given the full area.
func CellSize(slots []Slot, width, height int) (int, int) {
	rows := Rows(slots)
	if rows == 0 || width < Columns || height < rows {
		return 0, 0
	}
	return width / Columns, height / rows
}

// CellAt maps a terminal coordinate to the 1-based grid position under it,
// 0 when the coordinate falls outside the grid or in the remainder margin.
func CellAt(slots []Slot, width, height, x, y int) int {
	cw, ch := CellSize(slots, width, height)
	if cw == 0 || ch == 0 || x < 0 || y < 0 {
		return 0
	}
	col, row := x/cw, y/ch
	if col >= Columns || row >= Rows(slots) {
		return 0
	}
	pos := row*Columns + col + 1
	if pos > len(slots) {
		return 0
	}
	return pos
}
