package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/runner/notes"
	"tableflip.dev/tabletop/pkg/store"
)

func addNotes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List notepad tabs",
		Example: `
tabletop notes
tabletop notes show
tabletop notes show groceries
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			n := notes.Notes{Persistence: p}
			return oo.HandleError(n.List(context.Background()))
		},
	}

	show := &cobra.Command{
		Use:   "show [tab]",
		Short: "Print a tab's content; the active tab when no name is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			n := notes.Notes{Persistence: p}
			return oo.HandleError(n.Show(context.Background(), name))
		},
	}

	cmd.AddCommand(show)
	topLevel.AddCommand(cmd)
}
