package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/runner/ui"
	"tableflip.dev/tabletop/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the dashboard",
		Example: `
tabletop ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
