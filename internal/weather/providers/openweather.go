package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-cli/internal/weather"
)

// openWeatherPayload mirrors the OpenWeather success document. Field types
// match the canonical model so decoding doubles as validation: a payload
// with a missing section still decodes, but out-of-range numerics fail.
type openWeatherPayload struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity uint8   `json:"humidity"`
		Pressure uint16  `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Visibility uint16 `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// openWeatherErrorPayload mirrors the OpenWeather error document. The live
// API reports cod sometimes as a string ("404") and sometimes as a number
// (401); it is never inspected here, so it decodes as raw JSON.
type openWeatherErrorPayload struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// OpenWeatherClient implements the weather.Client contract for
// OpenWeatherMap. Current and historical queries share the single configured
// endpoint; a historical query only adds a dt parameter.
type OpenWeatherClient struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOpenWeatherClient builds a client from the configured base URL and API
// key. Construction performs no network I/O.
func NewOpenWeatherClient(client *http.Client, baseURL, apiKey string) (*OpenWeatherClient, error) {
	if baseURL == "" || apiKey == "" {
		return nil, weather.ErrCreation
	}

	return &OpenWeatherClient{
		name:    "OpenWeather",
		baseURL: trimBaseURL(baseURL),
		apiKey:  apiKey,
		client:  client,
	}, nil
}

func (c *OpenWeatherClient) Name() string {
	return c.name
}

// BaseURL returns the normalized base URL the client will request against.
func (c *OpenWeatherClient) BaseURL() string {
	return c.baseURL
}

func (c *OpenWeatherClient) Fetch(ctx context.Context, address, date string) (weather.WeatherData, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	if date != "" {
		ts, err := parseDate(date)
		if err != nil {
			return weather.WeatherData{}, err
		}
		params.Set("dt", strconv.FormatInt(ts, 10))
	}

	status, body, err := doGet(ctx, c.client, c.name, c.baseURL, params)
	if err != nil {
		return weather.WeatherData{}, err
	}

	if status != http.StatusOK {
		var errPayload openWeatherErrorPayload
		if err := json.Unmarshal(body, &errPayload); err != nil {
			return weather.WeatherData{}, &weather.JSONParseError{Err: err}
		}
		return weather.WeatherData{}, &weather.ServerError{Message: errPayload.Message}
	}

	var payload openWeatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return weather.WeatherData{}, &weather.JSONParseError{Err: err}
	}

	return payload.toWeatherData(), nil
}

// toWeatherData maps the wire document onto the canonical model. OpenWeather
// already reports metric units, integral hPa and visibility in meters, so
// every field copies straight through. An empty condition list degrades to
// an empty description; the last entry wins otherwise.
func (p openWeatherPayload) toWeatherData() weather.WeatherData {
	var description string
	if n := len(p.Weather); n > 0 {
		description = p.Weather[n-1].Description
	}

	return weather.WeatherData{
		Temperature: p.Main.Temp,
		Humidity:    p.Main.Humidity,
		Pressure:    p.Main.Pressure,
		WindSpeed:   p.Wind.Speed,
		Visibility:  p.Visibility,
		Description: description,
	}
}
