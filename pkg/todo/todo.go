// Package todo holds the ordered todo list behind the todo widget and CLI.
package todo

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/tabletop/pkg/store"
)

// ErrNotFound is returned when an item ID does not exist in the list.
var ErrNotFound = errors.New("todo: item not found")

// Item is one todo entry.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List is an ordered collection of items. Order is user-controlled
// (drag-reorder in the UI) and preserved verbatim through persistence.
type List struct {
	items []Item
}

// Hydrate loads the persisted list, defaulting to empty when the key is
// absent or corrupt.
func Hydrate(p store.Persistence) *List {
	l := &List{}
	var items []Item
	if p.GetJSON(store.KeyTodos, &items) {
		l.items = items
	}
	return l
}

// Persist writes the full list. Called after every mutation.
func (l *List) Persist(p store.Persistence) error {
	items := l.items
	if items == nil {
		items = []Item{}
	}
	return p.SetJSON(store.KeyTodos, items)
}

// Add appends a new item and returns it.
func (l *List) Add(text string) (Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, errors.New("todo: text required")
	}
	item := Item{ID: uuid.NewString(), Text: text}
	l.items = append(l.items, item)
	return item, nil
}

// Toggle flips an item's completion state.
func (l *List) Toggle(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Done = !l.items[i].Done
			return nil
		}
	}
	return ErrNotFound
}

// Edit replaces an item's text.
func (l *List) Edit(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("todo: text required")
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Text = text
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes an item.
func (l *List) Remove(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Move shifts an item by delta positions, clamping at the list ends.
func (l *List) Move(id string, delta int) error {
	from := -1
	for i := range l.items {
		if l.items[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return ErrNotFound
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(l.items)-1 {
		to = len(l.items) - 1
	}
	item := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	rest := append([]Item{item}, l.items[to:]...)
	l.items = append(l.items[:to], rest...)
	return nil
}

// Items returns the full ordered list.
func (l *List) Items() []Item {
	return l.items
}

// Split returns the active and completed sub-lists, both in list order. The
// widget renders them as separate sections.
func (l *List) Split() (active, completed []Item) {
	for _, item := range l.items {
		if item.Done {
			completed = append(completed, item)
		} else {
			active = append(active, item)
		}
	}
	return active, completed
}

// Len reports the number of items.
func (l *List) Len() int { return len(l.items) }

// Get returns the item with the given ID.
func (l *List) Get(id string) (Item, bool) {
	for _, item := range l.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
