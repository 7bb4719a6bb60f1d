// Package todos backs the todo CLI commands.
package todos

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tabletop/pkg/printers"
	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/todo"
)

// Todos performs one todo operation against the store.
type Todos struct {
	ShowID      bool
	Persistence store.Persistence
}

func (t *Todos) list() (*todo.List, error) {
	if t.Persistence == nil {
		return nil, errors.New("can not reach todos, no persistence")
	}
	return todo.Hydrate(t.Persistence), nil
}

// List prints active items, then completed ones.
func (t *Todos) List(ctx context.Context) error {
	l, err := t.list()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: t.ShowID}
	active, completed := l.Split()

	fmt.Println("")
	pp.TitleWithCount("todo", len(active))
	pp.Todos(active...)
	if len(completed) > 0 {
		pp.TitleWithCount("done", len(completed))
		pp.Todos(completed...)
	}
	return nil
}

// Add appends a new item and prints the result.
func (t *Todos) Add(ctx context.Context, text string) error {
	l, err := t.list()
	if err != nil {
		return err
	}
	item, err := l.Add(text)
	if err != nil {
		return err
	}
	if err := l.Persist(t.Persistence); err != nil {
		return err
	}
	fmt.Printf("added %s\n", item.ID)
	return nil
}

// Done toggles an item's completion.
func (t *Todos) Done(ctx context.Context, id string) error {
	l, err := t.list()
	if err != nil {
		return err
	}
	if err := l.Toggle(id); err != nil {
		return err
	}
	return l.Persist(t.Persistence)
}

// Remove deletes an item.
func (t *Todos) Remove(ctx context.Context, id string) error {
	l, err := t.list()
	if err != nil {
		return err
	}
	if err := l.Remove(id); err != nil {
		return err
	}
	return l.Persist(t.Persistence)
}

// Move reorders an item by delta.
func (t *Todos) Move(ctx context.Context, id string, delta int) error {
	l, err := t.list()
	if err != nil {
		return err
	}
	if err := l.Move(id, delta); err != nil {
		return err
	}
	return l.Persist(t.Persistence)
}
