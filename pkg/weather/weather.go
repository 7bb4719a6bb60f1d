// Package weather fetches current conditions and a short forecast from the
// Open-Meteo API, with reverse geocoding for a human-readable place name.
// Everything is best-effort: callers fall back to a placeholder reading on
// any failure and never retry in a loop.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Default service endpoints.
const (
	DefaultForecastURL = "https://api.open-meteo.com"
	DefaultGeocodeURL  = "https://api.bigdatacloud.net"
)

// HourForecast is one hourly forecast sample.
type HourForecast struct {
	Time        time.Time
	Temperature float64
	Code        int
}

// Reading is a complete weather snapshot for one location.
type Reading struct {
	Place       string
	Temperature float64
	High        float64
	Low         float64
	Code        int
	Hourly      []HourForecast
}

// Description renders the WMO weather code as text.
func (r Reading) Description() string {
	return describeCode(r.Code)
}

// Placeholder is the fallback reading shown when the fetch fails.
func Placeholder() Reading {
	return Reading{Place: "—", Code: -1}
}

// Client calls the forecast and reverse-geocode services.
type Client struct {
	HTTPClient  *http.Client
	ForecastURL string
	GeocodeURL  string
}

// NewClient returns a client against the public endpoints with a sane
// timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		ForecastURL: DefaultForecastURL,
		GeocodeURL:  DefaultGeocodeURL,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"hourly"`
}

// Current fetches current conditions, daily high/low, and the hourly
// forecast for the coordinates. The place name is resolved with a companion
// reverse-geocode call; its failure degrades to empty, not an error.
func (c *Client) Current(ctx context.Context, lat, lon float64) (Reading, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("hourly", "temperature_2m,weather_code")
	q.Set("forecast_days", "1")
	q.Set("timezone", "auto")

	var resp forecastResponse
	if err := c.getJSON(ctx, c.ForecastURL+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return Reading{}, fmt.Errorf("weather: forecast: %w", err)
	}

	reading := Reading{
		Temperature: resp.Current.Temperature,
		Code:        resp.Current.WeatherCode,
	}
	if len(resp.Daily.TemperatureMax) > 0 {
		reading.High = resp.Daily.TemperatureMax[0]
	}
	if len(resp.Daily.TemperatureMin) > 0 {
		reading.Low = resp.Daily.TemperatureMin[0]
	}
	for i, ts := range resp.Hourly.Time {
		if i >= len(resp.Hourly.Temperature) || i >= len(resp.Hourly.WeatherCode) {
			break
		}
		when, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil {
			continue
		}
		reading.Hourly = append(reading.Hourly, HourForecast{
			Time:        when,
			Temperature: resp.Hourly.Temperature[i],
			Code:        resp.Hourly.WeatherCode[i],
		})
	}

	if place, err := c.PlaceName(ctx, lat, lon); err == nil {
		reading.Place = place
	}
	return reading, nil
}

type geocodeResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
}

// PlaceName resolves coordinates to a human-readable locality.
func (c *Client) PlaceName(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("localityLanguage", "en")

	var resp geocodeResponse
	if err := c.getJSON(ctx, c.GeocodeURL+"/data/reverse-geocode-client?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("weather: geocode: %w", err)
	}

	switch {
	case resp.City != "":
		return resp.City, nil
	case resp.Locality != "":
		return resp.Locality, nil
	case resp.PrincipalSubdivision != "":
		return resp.PrincipalSubdivision, nil
	default:
		return resp.CountryName, nil
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, into interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

// describeCode maps WMO weather interpretation codes to short text.
func describeCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 2:
		return "partly cloudy"
	case code == 3:
		return "overcast"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "showers"
	case code == 85 || code == 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
