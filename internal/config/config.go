package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config represents the main application configuration
type Config struct {
	// Metadata provider
	TMDb TMDbConfig `yaml:"tmdb"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// TMDbConfig holds TMDb API configuration.
// AccessToken is the v4 read access token sent as a bearer credential.
type TMDbConfig struct {
	AccessToken string `yaml:"access_token"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
	LogFile  string `yaml:"log_file"`  // log destination for the TUI; empty = discard
}

// Load loads configuration from a YAML file with environment variable
// overrides. A missing file is not an error: the configuration can be
// supplied entirely through REELGRID_* environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// env-only configuration
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("REELGRID_TMDB_ACCESS_TOKEN"); v != "" {
		c.TMDb.AccessToken = v
	}

	if v := os.Getenv("REELGRID_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}

	if v := os.Getenv("REELGRID_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if v := os.Getenv("REELGRID_LOG_FILE"); v != "" {
		c.App.LogFile = v
	}
}

// Validate validates the configuration and applies defaults.
// The TMDb access token is the one hard requirement: every data operation
// needs it, so its absence fails here rather than on first use.
func (c *Config) Validate() error {
	if c.TMDb.AccessToken == "" {
		return fmt.Errorf("tmdb.access_token is required: set it in the config file or REELGRID_TMDB_ACCESS_TOKEN env var")
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is configured")
	}

	c.setDefaults()

	switch c.App.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug, info, warn, error (got %q)", c.App.LogLevel)
	}

	return nil
}

// setDefaults fills in zero-value fields.
func (c *Config) setDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
}
