package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the user preferences of the esp command.
type Config struct {
	Portfolio string  `toml:"portfolio"` // path to the portfolio file
	Currency  string  `toml:"currency"`  // used when the portfolio has none
	Growth    float64 `toml:"growth"`    // default yearly stock price growth for projections
	Horizon   int     `toml:"horizon"`   // default number of projected years
	LogLevel  string  `toml:"log_level"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Portfolio: "portfolio.json",
		Currency:  "EUR",
		Growth:    0.05,
		Horizon:   10,
		LogLevel:  "warn",
	}
}

// LoadConfig loads the configuration file at path on top of the defaults,
// then applies the environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)
	config.Currency = strings.ToUpper(config.Currency)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvPortfolio); v != "" {
		config.Portfolio = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("ESP_GROWTH"); v != "" {
		if g, err := strconv.ParseFloat(v, 64); err == nil {
			config.Growth = g
		}
	}
	if v := os.Getenv("ESP_HORIZON"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			config.Horizon = h
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}
