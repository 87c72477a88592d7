// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the server configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string
	// Mode is the gin mode: debug, release or test.
	Mode string
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level string
}

// Load reads the configuration from the environment, after loading any .env
// files given (or ./.env when none are). Missing .env files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("CHARTREF_PORT", "8080"),
			Mode: getEnv("CHARTREF_MODE", "release"),
		},
		Log: LogConfig{
			Level: getEnv("CHARTREF_LOG_LEVEL", "info"),
		},
	}

	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid CHARTREF_MODE %q (must be debug, release or test)", cfg.Server.Mode)
	}

	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("invalid CHARTREF_LOG_LEVEL %q: %w", l.Level, err)
	}

	return level, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
