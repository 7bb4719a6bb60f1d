package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/commands/options"
	"tableflip.dev/tabletop/pkg/runner/forecast"
)

func addWeather(topLevel *cobra.Command) {
	lo := &options.LocationOptions{}

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Print current conditions and a short forecast",
		Example: `
tabletop weather
tabletop weather --lat 52.52 --lon 13.405
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := lo.Resolve(cmd); err != nil {
				return oo.HandleError(err)
			}
			f := forecast.Forecast{Lat: lo.Lat, Lon: lo.Lon}
			return oo.HandleError(f.Do(context.Background()))
		},
	}
	options.AddLocationArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
