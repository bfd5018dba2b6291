package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment.
type Config struct {
	ScoresPath string `env:"SCOUNDREL_SCORES" envDefault:"scoundrel_scores.json"`
	PlayerName string `env:"SCOUNDREL_NAME" envDefault:"Scoundrel"`
	LogLevel   string `env:"SCOUNDREL_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the log level.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid SCOUNDREL_LOG_LEVEL %q", c.LogLevel)
	}
}
