// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tabletop/pkg/store"
)

// LocationOptions captures the coordinates used by weather commands.
type LocationOptions struct {
	Lat float64
	Lon float64

	latSet bool
	lonSet bool
}

// AddLocationArgs wires latitude/longitude flags on the provided command.
func AddLocationArgs(cmd *cobra.Command, lo *LocationOptions) {
	cmd.Flags().Float64Var(&lo.Lat, "lat", 0, "Latitude. Defaults to the configured location.")
	cmd.Flags().Float64Var(&lo.Lon, "lon", 0, "Longitude. Defaults to the configured location.")
}

// Resolve fills unset coordinates from the config file, erroring when no
// location is available anywhere.
func (lo *LocationOptions) Resolve(cmd *cobra.Command) error {
	lo.latSet = cmd.Flags().Changed("lat")
	lo.lonSet = cmd.Flags().Changed("lon")
	if lo.latSet && lo.lonSet {
		return nil
	}

	// The weather command has no store.Load step, so the config file has
	// not been read yet.
	if _, err := store.LoadConfig(); err != nil {
		return err
	}
	lat, lon, ok := store.Location()
	if !ok {
		return errors.New("no location: pass --lat/--lon or set latitude/longitude in .tabletop.yaml")
	}
	if !lo.latSet {
		lo.Lat = lat
	}
	if !lo.lonSet {
		lo.Lon = lon
	}
	return nil
}
