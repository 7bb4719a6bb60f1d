package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/runner/backdrop"
	"tableflip.dev/tabletop/pkg/store"
)

func addWallpaper(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Show or change the dashboard wallpaper",
		Example: `
tabletop wallpaper
tabletop wallpaper set dusk
tabletop wallpaper set ~/pictures/bg.png
tabletop wallpaper share ~/pictures/bg.png
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			b := backdrop.Backdrop{Persistence: p}
			return oo.HandleError(b.Show(context.Background()))
		},
	}

	set := &cobra.Command{
		Use:   "set <builtin|path|url>",
		Short: "Set the wallpaper and recompute the palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			b := backdrop.Backdrop{Persistence: p}
			return oo.HandleError(b.Set(context.Background(), args[0]))
		},
	}

	share := &cobra.Command{
		Use:   "share <path>",
		Short: "Upload a local image and use the hosted url as wallpaper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			b := backdrop.Backdrop{Persistence: p}
			return oo.HandleError(b.Share(context.Background(), args[0]))
		},
	}

	cmd.AddCommand(set, share)
	topLevel.AddCommand(cmd)
}
