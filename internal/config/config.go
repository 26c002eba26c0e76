package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	UIModeLine = "line"
	UIModeTUI  = "tui"
)

type Config struct {
	Environment  string `env:"ENVIRONMENT"   envDefault:"development"`
	LogLevelName string `env:"LOG_LEVEL"     envDefault:"warn"`
	LogFile      string `env:"LOG_FILE"`
	UIMode       string `env:"UI_MODE"       envDefault:"line"`
	WrapWidth    int    `env:"WRAP_WIDTH"    envDefault:"78"`
	RedisURL     string `env:"REDIS_URL"`
	ScenarioFile string `env:"SCENARIO_FILE"`
	NoMatcher    bool   `env:"NO_MATCHER"    envDefault:"false"`
	TurnLimit    int    `env:"TURN_LIMIT"`

	LogLevel slog.Level `env:"-"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)

	cfg.UIMode = strings.ToLower(strings.TrimSpace(cfg.UIMode))
	switch cfg.UIMode {
	case UIModeLine, UIModeTUI:
	default:
		return nil, fmt.Errorf("UI_MODE must be %q or %q, got %q", UIModeLine, UIModeTUI, cfg.UIMode)
	}
	if cfg.WrapWidth < 20 {
		return nil, fmt.Errorf("WRAP_WIDTH must be at least 20, got %d", cfg.WrapWidth)
	}
	if cfg.TurnLimit < 0 {
		return nil, fmt.Errorf("TURN_LIMIT must not be negative, got %d", cfg.TurnLimit)
	}
	return &cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
