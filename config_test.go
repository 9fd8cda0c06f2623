package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// t.Setenv registers the restore, Unsetenv clears the value
		t.Setenv("DBT2DDL_LOG_LEVEL", "")
		os.Unsetenv("DBT2DDL_LOG_LEVEL")
		t.Setenv("DBT2DDL_POSTGRES_IMAGE", "")
		os.Unsetenv("DBT2DDL_POSTGRES_IMAGE")

		cfg := LoadConfig()
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "postgres:16-alpine", cfg.PostgresImage)
	})

	t.Run("environment_overrides", func(t *testing.T) {
		t.Setenv("DBT2DDL_LOG_LEVEL", "debug")
		t.Setenv("DBT2DDL_POSTGRES_IMAGE", "postgres:15-alpine")

		cfg := LoadConfig()
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "postgres:15-alpine", cfg.PostgresImage)
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"debug_uppercase", "DEBUG", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"unknown_falls_back_to_info", "trace", slog.LevelInfo},
		{"empty_falls_back_to_info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			assert.Equal(t, tt.expected, cfg.SlogLevel())
		})
	}
}
