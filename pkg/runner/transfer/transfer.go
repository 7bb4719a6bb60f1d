// Package transfer backs the export and import CLI commands.
package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/tabletop/pkg/store"
)

// Transfer moves the full store to and from a JSON file.
type Transfer struct {
	Persistence store.Persistence
}

// Export writes every key to path as pretty-printed JSON.
func (t *Transfer) Export(ctx context.Context, path string) error {
	if t.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	data, err := t.Persistence.Export(ctx)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return err
	}
	fmt.Printf("exported %d keys to %s\n", len(data), path)
	return nil
}

// Import replaces the store's contents with the keys from path. The caller
// is expected to have confirmed the overwrite.
func (t *Transfer) Import(ctx context.Context, path string) error {
	if t.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%s is not a tabletop export: %w", path, err)
	}
	if err := t.Persistence.Import(data); err != nil {
		return err
	}
	fmt.Printf("imported %d keys from %s\n", len(data), path)
	return nil
}
