// Package ui launches the interactive dashboard.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/tabletop/pkg/store"
	"tableflip.dev/tabletop/pkg/tui/app"
)

// UI runs the full-screen dashboard against the store.
type UI struct {
	Persistence store.Persistence
}

// Do blocks until the dashboard exits.
func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not open dashboard, no persistence")
	}
	return app.Run(u.Persistence)
}
