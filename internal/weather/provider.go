package weather

import (
	"context"
	"strings"
)

// Provider identifies a weather data source. The set is closed: new sources
// mean a new constant here plus a client in the providers package.
type Provider string

const (
	OpenWeather  Provider = "open-weather"
	WeatherAPI   Provider = "weather-api"
	AccuWeather  Provider = "accu-weather"
	AerisWeather Provider = "aeris-weather"
)

// All returns every known provider in display order.
func All() []Provider {
	return []Provider{OpenWeather, WeatherAPI, AccuWeather, AerisWeather}
}

// ParseProvider maps a user-supplied name onto a Provider. Matching is
// case-insensitive; unknown names yield ErrProviderNotFound.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(s) {
	case string(OpenWeather):
		return OpenWeather, nil
	case string(WeatherAPI):
		return WeatherAPI, nil
	case string(AccuWeather):
		return AccuWeather, nil
	case string(AerisWeather):
		return AerisWeather, nil
	default:
		return "", ErrProviderNotFound
	}
}

// Implemented reports whether a client exists for the provider. AccuWeather
// and AerisWeather are recognized identifiers without an implementation.
func (p Provider) Implemented() bool {
	return p == OpenWeather || p == WeatherAPI
}

func (p Provider) String() string {
	return string(p)
}

// Client abstracts a weather data source. Callers hold a Client and never
// branch on the concrete provider after construction.
//
// An empty date requests current conditions; a non-empty date requests
// historical conditions for the parsed instant.
type Client interface {
	Name() string
	Fetch(ctx context.Context, address, date string) (WeatherData, error)
}
