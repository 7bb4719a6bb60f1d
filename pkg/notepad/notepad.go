// Package notepad manages the multi-tab notepad state: an ordered,
// id-unique, capped collection of tabs, each holding markup content and the
// last cursor snapshot for that tab.
package notepad

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/tabletop/pkg/richtext"
	"tableflip.dev/tabletop/pkg/store"
)

// MaxTabs caps how many tabs a pad may hold.
const MaxTabs = 8

var (
	// ErrTabLimit is returned when adding a tab would exceed MaxTabs.
	ErrTabLimit = errors.New("notepad: tab limit reached")
	// ErrNotFound is returned when a tab ID does not exist.
	ErrNotFound = errors.New("notepad: tab not found")
)

// Tab is one notepad page.
type Tab struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Content   string             `json:"content"`
	Selection *richtext.Snapshot `json:"selection,omitempty"`
}

// Pad is the ordered tab collection plus the active tab pointer.
type Pad struct {
	tabs   []Tab
	active int
}

type padState struct {
	Tabs   []Tab `json:"tabs"`
	Active int   `json:"active"`
}

// Hydrate loads the persisted pad. Absent or corrupt state yields a pad with
// one empty tab so the widget always has a surface to edit.
func Hydrate(p store.Persistence) *Pad {
	pad := &Pad{}
	var state padState
	if p.GetJSON(store.KeyNotepad, &state) && len(state.Tabs) > 0 {
		pad.tabs = state.Tabs
		pad.active = state.Active
		if pad.active < 0 || pad.active >= len(pad.tabs) {
			pad.active = 0
		}
		return pad
	}
	pad.tabs = []Tab{newTab("notes")}
	return pad
}

// Persist writes the full pad state.
func (pad *Pad) Persist(p store.Persistence) error {
	return p.SetJSON(store.KeyNotepad, padState{Tabs: pad.tabs, Active: pad.active})
}

func newTab(name string) Tab {
	return Tab{ID: uuid.NewString(), Name: name}
}

// NewTab appends a tab and makes it active.
func (pad *Pad) NewTab(name string) (Tab, error) {
	if len(pad.tabs) >= MaxTabs {
		return Tab{}, ErrTabLimit
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "untitled"
	}
	tab := newTab(name)
	pad.tabs = append(pad.tabs, tab)
	pad.active = len(pad.tabs) - 1
	return tab, nil
}

// CloseTab removes the tab. Closing the last remaining tab clears its
// content and selection instead of removing it, so the pad never goes empty.
func (pad *Pad) CloseTab(id string) error {
	idx := pad.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}
	if len(pad.tabs) == 1 {
		pad.tabs[0].Content = ""
		pad.tabs[0].Selection = nil
		return nil
	}
	pad.tabs = append(pad.tabs[:idx], pad.tabs[idx+1:]...)
	if pad.active >= len(pad.tabs) {
		pad.active = len(pad.tabs) - 1
	} else if pad.active > idx {
		pad.active--
	}
	return nil
}

// Rename changes a tab's display name.
func (pad *Pad) Rename(id, name string) error {
	idx := pad.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "untitled"
	}
	pad.tabs[idx].Name = name
	return nil
}

// Reorder moves a tab by delta positions, clamping at the ends. The active
// tab follows its content.
func (pad *Pad) Reorder(id string, delta int) error {
	from := pad.indexOf(id)
	if from == -1 {
		return ErrNotFound
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(pad.tabs)-1 {
		to = len(pad.tabs) - 1
	}
	activeID := pad.tabs[pad.active].ID
	tab := pad.tabs[from]
	pad.tabs = append(pad.tabs[:from], pad.tabs[from+1:]...)
	rest := append([]Tab{tab}, pad.tabs[to:]...)
	pad.tabs = append(pad.tabs[:to], rest...)
	pad.active = pad.indexOf(activeID)
	return nil
}

// SetContent replaces the active tab's content.
func (pad *Pad) SetContent(content string) {
	pad.tabs[pad.active].Content = content
}

// SetSelection stores the active tab's cursor snapshot.
func (pad *Pad) SetSelection(snap *richtext.Snapshot) {
	pad.tabs[pad.active].Selection = snap
}

// Activate switches the active tab by index, wrapping around either end so
// tab cycling is circular.
func (pad *Pad) Activate(idx int) {
	n := len(pad.tabs)
	idx %= n
	if idx < 0 {
		idx += n
	}
	pad.active = idx
}

// Cycle moves the active tab pointer by delta, wrapping.
func (pad *Pad) Cycle(delta int) {
	pad.Activate(pad.active + delta)
}

// Active returns the current tab and its index.
func (pad *Pad) Active() (Tab, int) {
	return pad.tabs[pad.active], pad.active
}

// Tabs returns the ordered tab list.
func (pad *Pad) Tabs() []Tab {
	return pad.tabs
}

func (pad *Pad) indexOf(id string) int {
	for i := range pad.tabs {
		if pad.tabs[i].ID == id {
			return i
		}
	}
	return -1
}
