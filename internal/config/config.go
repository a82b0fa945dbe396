// Package config reads settings from the environment. Values in a .env file
// are loaded first by the caller (see cmd/friendgraph) via godotenv.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the driver settings:
//   - FRIENDGRAPH_LOG_LEVEL (default "warn")
//   - FRIENDGRAPH_LOG_FORMAT, "text" or "json" (default "text")
//   - FRIENDGRAPH_SCRIPT, path to a command script; empty runs the demo
type Config struct {
	LogLevel  logrus.Level
	LogFormat string
	Script    string
}

// Load builds a Config from the current environment.
func Load() (Config, error) {
	level, err := logrus.ParseLevel(getEnv("FRIENDGRAPH_LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid FRIENDGRAPH_LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(getEnv("FRIENDGRAPH_LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return Config{}, fmt.Errorf("invalid FRIENDGRAPH_LOG_FORMAT %q", format)
	}

	return Config{
		LogLevel:  level,
		LogFormat: format,
		Script:    os.Getenv("FRIENDGRAPH_SCRIPT"),
	}, nil
}

// LoadFile merges the given .env files into the environment without
// overriding variables that are already set, then calls Load.
func LoadFile(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return Load()
}

// NewLogger returns a logrus logger writing to w with the configured level and format.
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
