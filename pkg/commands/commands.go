package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tabletop/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tabletop",
		Short: base.Wrap80("A personal dashboard for the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArgs(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKeys(topLevel)
	addTodo(topLevel)
	addNotes(topLevel)
	addWeather(topLevel)
	addWallpaper(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
