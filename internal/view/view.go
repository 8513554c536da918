// Package view renders the canonical weather model for the terminal, either
// as a colored two-column table or as a single JSON document.
package view

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/i474232898/weather-cli/internal/weather"
)

// Table writes the weather data as a Name/Value table with per-row colors.
// The description is title-cased for display; stored data is untouched.
func Table(w io.Writer, data weather.WeatherData) {
	title := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Value"})
	t.AppendRows([]table.Row{
		{"Description", color.GreenString("%s", title.String(data.Description))},
		{"Temperature", color.YellowString("%.2f °C", data.Temperature)},
		{"Humidity", color.BlueString("%d %%", data.Humidity)},
		{"Pressure", color.GreenString("%d hPa", data.Pressure)},
		{"Wind speed", color.CyanString("%.2f m/sec", data.WindSpeed)},
		{"Visibility", color.MagentaString("%d m", data.Visibility)},
	})
	t.Render()
}

// JSON writes the weather data as one line of JSON.
func JSON(w io.Writer, data weather.WeatherData) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode weather data: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
