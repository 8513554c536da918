package view

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-cli/internal/weather"
)

var sample = weather.WeatherData{
	Temperature: 25.5,
	Humidity:    50,
	Pressure:    1010,
	WindSpeed:   10,
	Visibility:  10000,
	Description: "partly cloudy",
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sample))

	assert.JSONEq(t,
		`{"temp":25.5,"humidity":50,"pressure":1010,"wind_speed":10,"visibility":10000,"description":"partly cloudy"}`,
		buf.String(),
	)
}

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Table(&buf, sample)
	out := buf.String()

	for _, want := range []string{
		"Description", "Partly Cloudy",
		"Temperature", "25.50 °C",
		"Humidity", "50 %",
		"Pressure", "1010 hPa",
		"Wind speed", "10.00 m/sec",
		"Visibility", "10000 m",
	} {
		assert.Contains(t, out, want)
	}
}
