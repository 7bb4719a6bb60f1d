package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/commands/options"
	"tableflip.dev/tabletop/pkg/runner/todos"
	"tableflip.dev/tabletop/pkg/store"
)

func addTodo(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list",
		Example: `
tabletop todo
tabletop todo add buy milk
tabletop todo done <id>
tabletop todo rm <id>
tabletop todo move <id> -1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := todos.Todos{Persistence: p, ShowID: io.ShowID}
			return oo.HandleError(t.List(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Append a todo item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := todos.Todos{Persistence: p}
			return oo.HandleError(t.Add(context.Background(), strings.Join(args, " ")))
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a todo item's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := todos.Todos{Persistence: p}
			return oo.HandleError(t.Done(context.Background(), args[0]))
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := todos.Todos{Persistence: p}
			return oo.HandleError(t.Remove(context.Background(), args[0]))
		},
	}

	move := &cobra.Command{
		Use:   "move <id> <delta>",
		Short: "Reorder a todo item, e.g. -1 moves it up one place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t := todos.Todos{Persistence: p}
			return oo.HandleError(t.Move(context.Background(), args[0], delta))
		},
	}

	cmd.AddCommand(add, done, rm, move)
	topLevel.AddCommand(cmd)
}
