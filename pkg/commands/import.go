package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/commands/options"
	"tableflip.dev/tabletop/pkg/runner/transfer"
	"tableflip.dev/tabletop/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all dashboard data with a previous export",
		Example: `
tabletop import backup.json --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Yes && !confirm("importing replaces everything in the store. continue?") {
				fmt.Println("aborted")
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := transfer.Transfer{Persistence: p}
			return oo.HandleError(t.Import(context.Background(), args[0]))
		},
	}
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(line)) == "y"
}
