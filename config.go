package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the environment-driven settings. Every value has a default so
// the tool runs with no environment at all.
type Config struct {
	LogLevel      string
	PostgresImage string
}

// LoadConfig reads optional overrides from a .env file and the process
// environment.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	config := Config{}
	config.LogLevel = cast.ToString(getOrReturnDefaultValue("DBT2DDL_LOG_LEVEL", "info"))
	config.PostgresImage = cast.ToString(getOrReturnDefaultValue("DBT2DDL_POSTGRES_IMAGE", "postgres:16-alpine"))
	return config
}

func getOrReturnDefaultValue(key string, defaultValue interface{}) interface{} {
	val, exists := os.LookupEnv(key)
	if exists {
		return val
	}
	return defaultValue
}

// SlogLevel maps the configured level name onto a slog level. Unknown names
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
