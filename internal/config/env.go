// Package config provides environment lookups for the command-line tools.
package config

import (
	"fmt"
	"log/slog"
	"os"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetLevel returns the log level named by the environment variable key
// ("debug", "info", "warn", "error", optionally with an offset such as
// "info+2"), or fallback if the variable is unset or empty.
func GetLevel(key string, fallback slog.Level) (slog.Level, error) {
	value := GetEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback, fmt.Errorf("config: %s: %w", key, err)
	}
	return level, nil
}
