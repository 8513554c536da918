// Package config loads and persists the tool's provider configuration: the
// selected default provider plus a {url, api_key} pair per provider.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/weather-cli/internal/weather"
)

const (
	appDirName     = "weather-cli"
	configFileName = "config.toml"

	// envPrefix namespaces the environment overrides, e.g.
	// WEATHER_OPENWEATHER_API_KEY.
	envPrefix = "weather"
)

// ProviderConfig holds the connection settings for one provider. The URL is
// stored as configured; trailing-slash normalization happens at client
// construction so both forms behave identically.
type ProviderConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// Configured reports whether the provider has both fields a client needs.
func (pc ProviderConfig) Configured() bool {
	return pc.URL != "" && pc.APIKey != ""
}

// Config is the persisted application configuration. It is loaded once per
// invocation and never mutated after a client has been constructed from it.
type Config struct {
	SelectedProvider weather.Provider `toml:"selected_provider"`

	OpenWeather  ProviderConfig `toml:"open_weather"`
	WeatherAPI   ProviderConfig `toml:"weather_api"`
	AccuWeather  ProviderConfig `toml:"accu_weather"`
	AerisWeather ProviderConfig `toml:"aeris_weather"`
}

// envOverrides mirrors the environment variables that can supplement the
// config file, so API keys can stay out of it.
type envOverrides struct {
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
	WeatherAPIKey     string `envconfig:"WEATHERAPI_API_KEY"`
}

// Default returns the configuration used when no file exists yet: the stock
// endpoint per provider, no API keys, OpenWeather selected.
func Default() *Config {
	return &Config{
		SelectedProvider: weather.OpenWeather,
		OpenWeather:      ProviderConfig{URL: "https://api.openweathermap.org/data/2.5/weather"},
		WeatherAPI:       ProviderConfig{URL: "https://api.weatherapi.com/v1"},
		AccuWeather:      ProviderConfig{URL: "http://dataservice.accuweather.com/currentconditions/v1"},
		AerisWeather:     ProviderConfig{URL: "https://api.aerisapi.com/conditions"},
	}
}

// DefaultPath returns the config file location inside the user's OS config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the configuration from path (DefaultPath when empty), falling
// back to defaults when no file exists, then applies environment overrides
// for API keys the file does not set.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run: defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if cfg.SelectedProvider == "" {
		cfg.SelectedProvider = weather.OpenWeather
	}

	var ov envOverrides
	if err := envconfig.Process(envPrefix, &ov); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if cfg.OpenWeather.APIKey == "" {
		cfg.OpenWeather.APIKey = ov.OpenWeatherAPIKey
	}
	if cfg.WeatherAPI.APIKey == "" {
		cfg.WeatherAPI.APIKey = ov.WeatherAPIKey
	}

	return cfg, nil
}

// Save writes the configuration to path (DefaultPath when empty), creating
// the parent directory on first use.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Provider returns the stored settings for the given provider.
func (c *Config) Provider(p weather.Provider) ProviderConfig {
	switch p {
	case weather.OpenWeather:
		return c.OpenWeather
	case weather.WeatherAPI:
		return c.WeatherAPI
	case weather.AccuWeather:
		return c.AccuWeather
	case weather.AerisWeather:
		return c.AerisWeather
	default:
		return ProviderConfig{}
	}
}

// SetProvider replaces the stored settings for the given provider.
func (c *Config) SetProvider(p weather.Provider, pc ProviderConfig) {
	switch p {
	case weather.OpenWeather:
		c.OpenWeather = pc
	case weather.WeatherAPI:
		c.WeatherAPI = pc
	case weather.AccuWeather:
		c.AccuWeather = pc
	case weather.AerisWeather:
		c.AerisWeather = pc
	}
}
