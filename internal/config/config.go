package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidViewport = errors.New("viewport size must be positive")

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	ScreenWidth    int    `envconfig:"SCREEN_WIDTH" default:"1200"`
	ScreenHeight   int    `envconfig:"SCREEN_HEIGHT" default:"800"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"localhost:5173,localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	SeedSample     bool   `envconfig:"SEED_SAMPLE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into WebSocket origin patterns.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Level maps LogLevel onto a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
