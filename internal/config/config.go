// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/huma-htmx/internal/htmx"
)

// Config holds the server settings.
type Config struct {
	Port      string
	LogLevel  zapcore.Level
	AutoVary  htmx.AutoVaryConfig
	RateLimit int // partial requests per minute and client; 0 disables the limit
}

const (
	defaultPort      = "8080"
	defaultRateLimit = 120
)

// Load reads .env files (missing files are ignored) and then the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:      defaultPort,
		LogLevel:  zapcore.InfoLevel,
		RateLimit: defaultRateLimit,
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	kinds, err := parseKinds(getenv("AUTO_VARY_KINDS"))
	if err != nil {
		return Config{}, fmt.Errorf("config: AUTO_VARY_KINDS: %w", err)
	}
	// Routes branch on HX-Boosted and echo HX-Prompt, so the server tracks
	// every kind unless told otherwise.
	if len(kinds) == 0 {
		kinds = htmx.AllKinds()
	}
	cfg.AutoVary.Kinds = kinds

	if v := getenv("AUTO_VARY_FAIL_OPEN"); v != "" {
		failOpen, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: AUTO_VARY_FAIL_OPEN: %w", err)
		}
		cfg.AutoVary.FailOpen = failOpen
	}

	if v := getenv("PARTIALS_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("config: PARTIALS_RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = n
	}

	return cfg, nil
}

// parseKinds reads a comma-separated header list. "all" selects every kind;
// an empty value yields nil.
func parseKinds(v string) ([]htmx.Kind, error) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "":
		return nil, nil
	case "all":
		return htmx.AllKinds(), nil
	}
	var kinds []htmx.Kind
	for part := range strings.SplitSeq(v, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := htmx.ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
