package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"worklog/internal/domain"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if one exists
// 3. Override with environment variables
// 4. Validate the result
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

// fileConfig mirrors the config file layout. Rates live here rather than on
// Config directly because the file maps project names to rate blocks.
type fileConfig struct {
	Log         LogConfig         `mapstructure:"log"`
	Week        WeekConfig        `mapstructure:"week"`
	Application ApplicationConfig `mapstructure:"application"`
	Rates       map[string]struct {
		Rate     float64 `mapstructure:"rate"`
		Currency string  `mapstructure:"currency"`
	} `mapstructure:"rates"`
}

// loadFromFile reads the config file through viper. A missing file is not an
// error; a present but unreadable or malformed file is.
func (l *Loader) loadFromFile() error {
	v := viper.New()
	if path := os.Getenv("WL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.config.Log.Dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.Log.Dir != "" {
		l.config.Log.Dir = fc.Log.Dir
	}
	if fc.Log.Filename != "" {
		l.config.Log.Filename = fc.Log.Filename
	}
	if fc.Week.Start != "" {
		l.config.Week.Start = fc.Week.Start
	}
	if fc.Application.Timeout > 0 {
		l.config.Application.Timeout = fc.Application.Timeout
	}
	if fc.Application.Editor != "" {
		l.config.Application.Editor = fc.Application.Editor
	}
	for project, rate := range fc.Rates {
		l.config.Rates[strings.TrimSpace(project)] = domain.Rate{
			Hourly:   rate.Rate,
			Currency: rate.Currency,
		}
	}
	return nil
}
