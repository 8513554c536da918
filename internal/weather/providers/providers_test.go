package providers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-cli/internal/weather"
)

func TestNewDispatch(t *testing.T) {
	ow, err := New(weather.OpenWeather, http.DefaultClient, "https://api.openweathermap.org/data/2.5/weather", "key")
	require.NoError(t, err)
	assert.IsType(t, &OpenWeatherClient{}, ow)

	wa, err := New(weather.WeatherAPI, http.DefaultClient, "https://api.weatherapi.com/v1", "key")
	require.NoError(t, err)
	assert.IsType(t, &WeatherAPIClient{}, wa)
}

func TestNewNotImplemented(t *testing.T) {
	for _, p := range []weather.Provider{weather.AccuWeather, weather.AerisWeather} {
		c, err := New(p, http.DefaultClient, "https://example.com", "key")
		assert.ErrorIs(t, err, weather.ErrProviderNotImplemented, p)
		assert.Nil(t, c)
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(weather.Provider("bogus"), http.DefaultClient, "https://example.com", "key")
	assert.ErrorIs(t, err, weather.ErrProviderNotFound)
}
