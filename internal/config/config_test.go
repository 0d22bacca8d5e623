package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Load_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Port:           8080,
		ScreenWidth:    1200,
		ScreenHeight:   800,
		AllowedOrigins: "localhost:5173,localhost:3000",
		LogLevel:       "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Error("defaults did not match:", diff)
	}
}

func Test_Load_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SCREEN_WIDTH", "640")
	t.Setenv("SCREEN_HEIGHT", "480")
	t.Setenv("ALLOWED_ORIGINS", " example.com , ,*.example.org")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_SAMPLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 || cfg.ScreenWidth != 640 || cfg.ScreenHeight != 480 || !cfg.SeedSample {
		t.Errorf("config = %+v", cfg)
	}
	if diff := cmp.Diff([]string{"example.com", "*.example.org"}, cfg.Origins()); diff != "" {
		t.Error("origins did not match:", diff)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func Test_Load_Rejects(t *testing.T) {
	testCases := map[string]struct {
		key, value string
		viewport   bool
	}{
		"zero width":      {key: "SCREEN_WIDTH", value: "0", viewport: true},
		"negative height": {key: "SCREEN_HEIGHT", value: "-5", viewport: true},
		"bad port":        {key: "PORT", value: "eighty"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded")
			}
			if got := errors.Is(err, ErrInvalidViewport); got != tc.viewport {
				t.Errorf("errors.Is(ErrInvalidViewport) = %v for %v", got, err)
			}
		})
	}
}

func Test_Level_Fallback(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"warn":    slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	} {
		if got := (&Config{LogLevel: in}).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", in, got, want)
		}
	}
}
