package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(forecast, geocode http.HandlerFunc) (*Client, func()) {
	fs := httptest.NewServer(forecast)
	gs := httptest.NewServer(geocode)
	c := &Client{
		HTTPClient:  fs.Client(),
		ForecastURL: fs.URL,
		GeocodeURL:  gs.URL,
	}
	return c, func() {
		fs.Close()
		gs.Close()
	}
}

func TestCurrentParsesForecastAndPlace(t *testing.T) {
	forecast := func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latitude"); got != "52.5200" {
			t.Errorf("latitude = %q", got)
		}
		w.Write([]byte(`{
			"current": {"temperature_2m": 18.4, "weather_code": 2},
			"daily": {"temperature_2m_max": [21.0], "temperature_2m_min": [11.5]},
			"hourly": {
				"time": ["2025-06-01T09:00", "2025-06-01T10:00"],
				"temperature_2m": [16.0, 17.2],
				"weather_code": [1, 2]
			}
		}`))
	}
	geocode := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": "Berlin", "countryName": "Germany"}`))
	}
	c, done := testClient(forecast, geocode)
	defer done()

	reading, err := c.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if reading.Place != "Berlin" {
		t.Fatalf("place = %q", reading.Place)
	}
	if reading.Temperature != 18.4 || reading.High != 21.0 || reading.Low != 11.5 {
		t.Fatalf("unexpected reading: %+v", reading)
	}
	if len(reading.Hourly) != 2 {
		t.Fatalf("hourly samples = %d, want 2", len(reading.Hourly))
	}
	if reading.Hourly[1].Temperature != 17.2 {
		t.Fatalf("hourly[1] = %+v", reading.Hourly[1])
	}
	if reading.Description() != "partly cloudy" {
		t.Fatalf("description = %q", reading.Description())
	}
}

func TestCurrentSurvivesGeocodeFailure(t *testing.T) {
	forecast := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"temperature_2m": 5.0, "weather_code": 71}}`))
	}
	geocode := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}
	c, done := testClient(forecast, geocode)
	defer done()

	reading, err := c.Current(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if reading.Place != "" {
		t.Fatalf("place = %q, want empty on geocode failure", reading.Place)
	}
	if reading.Description() != "snow" {
		t.Fatalf("description = %q", reading.Description())
	}
}

func TestCurrentErrorsOnBadStatus(t *testing.T) {
	forecast := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}
	geocode := func(w http.ResponseWriter, r *http.Request) {}
	c, done := testClient(forecast, geocode)
	defer done()

	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on non-200 forecast response")
	}
}

func TestPlaceNameFallbackOrder(t *testing.T) {
	geocode := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"locality": "Shoreditch", "countryName": "United Kingdom"}`))
	}
	c, done := testClient(func(w http.ResponseWriter, r *http.Request) {}, geocode)
	defer done()

	place, err := c.PlaceName(context.Background(), 51.52, -0.07)
	if err != nil {
		t.Fatalf("place name: %v", err)
	}
	if place != "Shoreditch" {
		t.Fatalf("place = %q", place)
	}
}

func TestPlaceholder(t *testing.T) {
	r := Placeholder()
	if r.Place != "—" || r.Description() != "unknown" {
		t.Fatalf("unexpected placeholder: %+v %q", r, r.Description())
	}
}
