// Package forecast backs the weather CLI command.
package forecast

import (
	"context"

	"tableflip.dev/tabletop/pkg/printers"
	"tableflip.dev/tabletop/pkg/weather"
)

// Forecast fetches and prints current conditions for one location.
type Forecast struct {
	Client   *weather.Client
	Lat, Lon float64
}

// Do fetches and prints the reading.
func (f *Forecast) Do(ctx context.Context) error {
	client := f.Client
	if client == nil {
		client = weather.NewClient()
	}

	reading, err := client.Current(ctx, f.Lat, f.Lon)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Weather(reading)
	pp.NewLine()
	return nil
}
