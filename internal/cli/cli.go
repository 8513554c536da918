// Package cli defines the weather-cli commands and their handlers. Input
// validation happens here, at the boundary; everything below works with
// already-vetted values.
package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v2"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/view"
	"github.com/i474232898/weather-cli/internal/weather"
	"github.com/i474232898/weather-cli/internal/weather/providers"
)

var validate = validator.New()

// App assembles the command-line application.
func App() *cli.App {
	return &cli.App{
		Name:  "weather-cli",
		Usage: "a quick and easy CLI tool for fetching weather data from various providers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:   "config",
				Usage:  "path to the configuration file",
				Hidden: true,
			},
		},
		Commands: []*cli.Command{
			providerListCommand(),
			configureCommand(),
			selectProviderCommand(),
			getCommand(),
		},
	}
}

func providerListCommand() *cli.Command {
	return &cli.Command{
		Name:  "provider-list",
		Usage: "get a full list of supported providers",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			printProviderList(c.App.Writer, cfg)
			return nil
		},
	}
}

func printProviderList(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current status of providers:")

	for _, p := range weather.All() {
		var status string
		switch {
		case !p.Implemented():
			status = color.RedString("%s (not implemented)", p)
		case cfg.Provider(p).Configured():
			status = color.GreenString("%s (configured)", p)
		default:
			status = color.YellowString("%s (not configured)", p)
		}

		if p == cfg.SelectedProvider {
			fmt.Fprintf(w, "*%s (selected)\n", status)
		} else {
			fmt.Fprintf(w, " %s\n", status)
		}
	}
}

// configureInput is validated before any configuration is touched.
type configureInput struct {
	URL    string `validate:"omitempty,url"`
	APIKey string `validate:"required"`
}

func configureCommand() *cli.Command {
	return &cli.Command{
		Name:      "configure",
		Usage:     "configure a provider with the given credentials",
		ArgsUsage: "<provider> <api-key>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "API service URL; keeps the provider's current URL when omitted",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("expected arguments: <provider> <api-key>")
			}

			p, err := weather.ParseProvider(c.Args().Get(0))
			if err != nil {
				return err
			}

			input := configureInput{URL: c.String("url"), APIKey: c.Args().Get(1)}
			if err := validate.Struct(input); err != nil {
				return fmt.Errorf("invalid configure input: %w", err)
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			pc := cfg.Provider(p)
			pc.APIKey = input.APIKey
			if input.URL != "" {
				pc.URL = input.URL
			}
			cfg.SetProvider(p, pc)

			if err := cfg.Save(c.String("config")); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Provider '%s' was successfully configured\n", color.GreenString(p.String()))
			return nil
		},
	}
}

func selectProviderCommand() *cli.Command {
	return &cli.Command{
		Name:      "select-provider",
		Usage:     "select an available provider",
		ArgsUsage: "<provider>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected argument: <provider>")
			}

			p, err := weather.ParseProvider(c.Args().First())
			if err != nil {
				return err
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			cfg.SelectedProvider = p
			if err := cfg.Save(c.String("config")); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Provider '%s' was successfully selected\n", color.GreenString(p.String()))
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "get weather information",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "date for historical weather information",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "print weather data as JSON",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   "provider to query instead of the selected one",
			},
		},
		Action: runGet,
	}
}

func runGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected argument: <address>")
	}
	address := c.Args().First()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	p := cfg.SelectedProvider
	if s := c.String("provider"); s != "" {
		if p, err = weather.ParseProvider(s); err != nil {
			return err
		}
	}

	pc := cfg.Provider(p)
	client, err := providers.New(p, &http.Client{}, pc.URL, pc.APIKey)
	if err != nil {
		return err
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr), spinner.WithSuffix(" Fetching..."))
	spin.Start()
	data, err := client.Fetch(c.Context, address, c.String("date"))
	spin.Stop()
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return view.JSON(c.App.Writer, data)
	}
	view.Table(c.App.Writer, data)
	return nil
}
