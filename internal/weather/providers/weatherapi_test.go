package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-cli/internal/weather"
)

const weatherAPICurrentBody = `{
	"current": {
		"temp_c": 25.5,
		"condition": {"text": "Partly Cloudy"},
		"wind_kph": 36.0,
		"pressure_mb": 1010.0,
		"humidity": 50,
		"vis_km": 10.0
	}
}`

// historyHour renders one hourly entry with a distinguishing temperature.
func historyHour(tempC float64) string {
	return fmt.Sprintf(`{
		"temp_c": %f,
		"condition": {"text": "Partly Cloudy"},
		"wind_kph": 36.0,
		"pressure_mb": 1010.0,
		"humidity": 50,
		"vis_km": 10.0
	}`, tempC)
}

func TestNewWeatherAPIClient(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		apiKey  string
		wantErr error
	}{
		{"valid", "https://api.weatherapi.com/v1", "key123", nil},
		{"empty url", "", "key123", weather.ErrCreation},
		{"empty key", "https://api.weatherapi.com/v1", "", weather.ErrCreation},
		{"both empty", "", "", weather.ErrCreation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewWeatherAPIClient(http.DefaultClient, tc.url, tc.apiKey)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.url, c.BaseURL())
		})
	}
}

func TestNewWeatherAPIClientTrimsTrailingSlash(t *testing.T) {
	withSlash, err := NewWeatherAPIClient(http.DefaultClient, "https://api.weatherapi.com/v1/", "key")
	require.NoError(t, err)

	assert.Equal(t, "https://api.weatherapi.com/v1", withSlash.BaseURL())
}

func TestWeatherAPIFetchCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/current.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, "key123", q.Get("key"))
		assert.Empty(t, q.Get("unixdt"))

		w.Write([]byte(weatherAPICurrentBody))
	}))
	defer srv.Close()

	c, err := NewWeatherAPIClient(srv.Client(), srv.URL, "key123")
	require.NoError(t, err)

	got, err := c.Fetch(context.Background(), "London", "")
	require.NoError(t, err)

	// 36 km/h converts to exactly 10 m/s, 10 km visibility to 10000 m and
	// the floating 1010.0 mb truncates to integral hPa.
	assert.Equal(t, weather.WeatherData{
		Temperature: 25.5,
		Humidity:    50,
		Pressure:    1010,
		WindSpeed:   10.0,
		Visibility:  10000,
		Description: "Partly Cloudy",
	}, got)
}

func TestWeatherAPIFetchHistorySelectsLastDayFirstHour(t *testing.T) {
	// Three days, several hours each. Only the last day's first hour
	// (temp 21) may influence the result.
	body := fmt.Sprintf(`{
		"forecast": {
			"forecastday": [
				{"hour": [%s, %s]},
				{"hour": [%s]},
				{"hour": [%s, %s, %s]}
			]
		}
	}`,
		historyHour(1), historyHour(2),
		historyHour(11),
		historyHour(21), historyHour(22), historyHour(23),
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/history.json", r.URL.Path)
		assert.Equal(t, "1697328000", r.URL.Query().Get("unixdt"))
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c, err := NewWeatherAPIClient(srv.Client(), srv.URL, "key123")
	require.NoError(t, err)

	got, err := c.Fetch(context.Background(), "London", "2023-10-15")
	require.NoError(t, err)
	assert.Equal(t, 21.0, got.Temperature)
}

func TestWeatherAPIHistorySelectionIgnoresOtherEntries(t *testing.T) {
	var payload weatherAPIHistoryPayload
	day := func(temps ...float64) (d struct {
		Hour []weatherAPICurrent `json:"hour"`
	}) {
		for _, temp := range temps {
			d.Hour = append(d.Hour, weatherAPICurrent{TempC: temp, Humidity: 1, PressureMb: 1000, VisKm: 1})
		}
		return d
	}
	payload.Forecast.ForecastDay = append(payload.Forecast.ForecastDay, day(1, 2), day(5, 6, 7))

	base, err := payload.toWeatherData()
	require.NoError(t, err)
	assert.Equal(t, 5.0, base.Temperature)

	// Mutating any non-selected entry must not change the result.
	payload.Forecast.ForecastDay[0].Hour[0].TempC = 99
	payload.Forecast.ForecastDay[1].Hour[2].TempC = 99
	mutated, err := payload.toWeatherData()
	require.NoError(t, err)
	assert.Equal(t, base, mutated)
}

func TestWeatherAPIHistoryEmptyLists(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no days", `{"forecast": {"forecastday": []}}`},
		{"no hours", `{"forecast": {"forecastday": [{"hour": []}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var payload weatherAPIHistoryPayload
			require.NoError(t, json.Unmarshal([]byte(tc.body), &payload))

			_, err := payload.toWeatherData()

			var parseErr *weather.JSONParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestWeatherAPIFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 1006, "message": "No matching location found."}}`))
	}))
	defer srv.Close()

	c, err := NewWeatherAPIClient(srv.Client(), srv.URL, "key123")
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "Nowhere", "")

	var srvErr *weather.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "No matching location found.", srvErr.Message)
}

func TestWeatherAPIFetchInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c, err := NewWeatherAPIClient(srv.Client(), srv.URL, "key123")
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "London", "")

	var parseErr *weather.JSONParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestWeatherAPIFetchInvalidDateIssuesNoRequest(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c, err := NewWeatherAPIClient(srv.Client(), srv.URL, "key123")
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), "London", "not a date")

	var dateErr *weather.DateTimeParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "not a date", dateErr.Input)
	assert.Zero(t, requests)
}
