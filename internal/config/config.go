package config

import (
	"os"
	"path/filepath"
	"time"

	"worklog/internal/calendar"
	"worklog/internal/domain"
)

// Config holds all configuration options for the worklog application
type Config struct {
	Log         LogConfig
	Week        WeekConfig
	Rates       domain.RateTable
	Application ApplicationConfig
}

// LogConfig holds log-file-related configuration
type LogConfig struct {
	Dir      string `mapstructure:"dir"`
	Filename string `mapstructure:"filename"`
}

// WeekConfig holds the reporting week configuration
type WeekConfig struct {
	// Start is the configured first day of the reporting week, as a weekday
	// name or unambiguous prefix ("sunday", "mon", "Tu").
	Start string `mapstructure:"start"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Editor  string        `mapstructure:"editor"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Log: LogConfig{
			Dir:      filepath.Join(homeDir, ".worklog"),
			Filename: "work.log",
		},
		Week: WeekConfig{
			Start: "Sunday",
		},
		Rates: domain.RateTable{},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Editor:  "vi",
		},
	}
}

// GetLogPath returns the full path to the log file
func (c *Config) GetLogPath() string {
	return filepath.Join(c.Log.Dir, c.Log.Filename)
}

// WeekStartIndex resolves the configured week-start weekday to its index
// (Sunday=0). Validate has already rejected names that do not resolve.
func (c *Config) WeekStartIndex() int {
	index, ok := calendar.WeekdayIndex(c.Week.Start)
	if !ok {
		return 0
	}
	return index
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("WL_LOG_DIR"); dir != "" {
		c.Log.Dir = dir
	}
	if filename := os.Getenv("WL_LOG_FILENAME"); filename != "" {
		c.Log.Filename = filename
	}
	if start := os.Getenv("WL_WEEK_START"); start != "" {
		c.Week.Start = start
	}
	if editor := os.Getenv("WL_EDITOR"); editor != "" {
		c.Application.Editor = editor
	}
	if timeout := os.Getenv("WL_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors. An ambiguous
// or unknown week-start weekday is rejected here, at startup, rather than
// surfacing later inside range resolution.
func (c *Config) Validate() error {
	if c.Log.Dir == "" {
		return &ConfigError{Field: "log.dir", Message: "log directory cannot be empty"}
	}
	if c.Log.Filename == "" {
		return &ConfigError{Field: "log.filename", Message: "log filename cannot be empty"}
	}
	if _, ok := calendar.WeekdayIndex(c.Week.Start); !ok {
		return &ConfigError{Field: "week.start", Message: "week start must be an unambiguous weekday name: " + c.Week.Start}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Application.Editor == "" {
		return &ConfigError{Field: "application.editor", Message: "editor cannot be empty"}
	}
	for project, rate := range c.Rates {
		if rate.Hourly < 0 {
			return &ConfigError{Field: "rates." + project, Message: "hourly rate cannot be negative"}
		}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
