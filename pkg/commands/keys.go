package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the widget legend and keyboard shortcuts",
		Example: `
tabletop keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keys.Keys{}
			err := k.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
