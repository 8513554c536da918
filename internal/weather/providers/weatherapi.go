package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-cli/internal/weather"
)

// weatherAPICurrent is the per-reading shape WeatherAPI.com uses in both its
// current document and each hourly history entry.
type weatherAPICurrent struct {
	TempC     float64 `json:"temp_c"`
	Condition struct {
		Text string `json:"text"`
	} `json:"condition"`
	WindKph    float64 `json:"wind_kph"`
	PressureMb float64 `json:"pressure_mb"`
	Humidity   uint8   `json:"humidity"`
	VisKm      float64 `json:"vis_km"`
}

type weatherAPIPayload struct {
	Current weatherAPICurrent `json:"current"`
}

type weatherAPIHistoryPayload struct {
	Forecast struct {
		ForecastDay []struct {
			Hour []weatherAPICurrent `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type weatherAPIErrorPayload struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WeatherAPIClient implements the weather.Client contract for
// WeatherAPI.com. Unlike OpenWeather it exposes distinct endpoints:
// /current.json for present conditions and /history.json when a date is
// supplied.
type WeatherAPIClient struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewWeatherAPIClient builds a client from the configured base URL and API
// key. Construction performs no network I/O.
func NewWeatherAPIClient(client *http.Client, baseURL, apiKey string) (*WeatherAPIClient, error) {
	if baseURL == "" || apiKey == "" {
		return nil, weather.ErrCreation
	}

	return &WeatherAPIClient{
		name:    "Weather API",
		baseURL: trimBaseURL(baseURL),
		apiKey:  apiKey,
		client:  client,
	}, nil
}

func (c *WeatherAPIClient) Name() string {
	return c.name
}

// BaseURL returns the normalized base URL the client will request against.
func (c *WeatherAPIClient) BaseURL() string {
	return c.baseURL
}

func (c *WeatherAPIClient) Fetch(ctx context.Context, address, date string) (weather.WeatherData, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/current.json"
	if date != "" {
		ts, err := parseDate(date)
		if err != nil {
			return weather.WeatherData{}, err
		}
		params.Set("unixdt", strconv.FormatInt(ts, 10))
		endpoint = c.baseURL + "/history.json"
	}

	status, body, err := doGet(ctx, c.client, c.name, endpoint, params)
	if err != nil {
		return weather.WeatherData{}, err
	}

	if status != http.StatusOK {
		var errPayload weatherAPIErrorPayload
		if err := json.Unmarshal(body, &errPayload); err != nil {
			return weather.WeatherData{}, &weather.JSONParseError{Err: err}
		}
		return weather.WeatherData{}, &weather.ServerError{Message: errPayload.Error.Message}
	}

	if date != "" {
		var payload weatherAPIHistoryPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return weather.WeatherData{}, &weather.JSONParseError{Err: err}
		}
		return payload.toWeatherData()
	}

	var payload weatherAPIPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.WeatherData{}, &weather.JSONParseError{Err: err}
	}
	return payload.Current.toWeatherData(), nil
}

// toWeatherData selects the reading for a history document: the last day in
// the forecast list and the first hour within it. A history request names a
// single day, so the lists normally hold exactly one entry each; empty lists
// are a malformed response and fail as a data error rather than defaulting.
func (p weatherAPIHistoryPayload) toWeatherData() (weather.WeatherData, error) {
	days := p.Forecast.ForecastDay
	if len(days) == 0 {
		return weather.WeatherData{}, &weather.JSONParseError{Err: errors.New("history response has no forecast days")}
	}

	hours := days[len(days)-1].Hour
	if len(hours) == 0 {
		return weather.WeatherData{}, &weather.JSONParseError{Err: errors.New("history response has no hourly entries")}
	}

	return hours[0].toWeatherData(), nil
}

// toWeatherData maps a WeatherAPI reading onto the canonical model,
// reconciling its units: km/h wind to m/s, km visibility to meters, floating
// millibars truncated to integral hPa.
func (r weatherAPICurrent) toWeatherData() weather.WeatherData {
	return weather.WeatherData{
		Temperature: r.TempC,
		Humidity:    r.Humidity,
		Pressure:    uint16(r.PressureMb),
		WindSpeed:   weather.KphToMps(r.WindKph),
		Visibility:  weather.KmToM(r.VisKm),
		Description: r.Condition.Text,
	}
}
