// Package providers holds the concrete clients behind the weather.Client
// contract, one per implemented provider.
package providers

import (
	"net/http"

	"github.com/i474232898/weather-cli/internal/weather"
)

// New constructs the client for the given provider from its configured base
// URL and API key. AccuWeather and AerisWeather are recognized members of
// the provider set without an implementation; selecting them fails here,
// before any request could be attempted.
func New(p weather.Provider, client *http.Client, baseURL, apiKey string) (weather.Client, error) {
	switch p {
	case weather.OpenWeather:
		return NewOpenWeatherClient(client, baseURL, apiKey)
	case weather.WeatherAPI:
		return NewWeatherAPIClient(client, baseURL, apiKey)
	case weather.AccuWeather, weather.AerisWeather:
		return nil, weather.ErrProviderNotImplemented
	default:
		return nil, weather.ErrProviderNotFound
	}
}
