package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HUNT_SEED", "")

	cfg := Load()
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q; want development", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v; want info", cfg.LogLevel)
	}
	if cfg.HuntSeed != 0 {
		t.Errorf("HuntSeed = %d; want 0", cfg.HuntSeed)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HUNT_SEED", "42")

	cfg := Load()
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q; want production", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v; want debug", cfg.LogLevel)
	}
	if cfg.HuntSeed != 42 {
		t.Errorf("HuntSeed = %d; want 42", cfg.HuntSeed)
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	for _, bad := range []string{"", "abc", "-1", "1.5"} {
		if got := parseSeed(bad); got != 0 {
			t.Errorf("parseSeed(%q) = %d; want 0", bad, got)
		}
	}
}
