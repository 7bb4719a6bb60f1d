package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/runner/transfer"
	"tableflip.dev/tabletop/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	out := "tabletop-export.json"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all dashboard data to a JSON file",
		Example: `
tabletop export
tabletop export -o backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := transfer.Transfer{Persistence: p}
			return oo.HandleError(t.Export(context.Background(), out))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", out, "Destination file.")

	topLevel.AddCommand(cmd)
}
