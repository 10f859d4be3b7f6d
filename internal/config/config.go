// Package config loads process configuration from a .env file and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultModel         = "gpt-4o-mini"
	DefaultMaxIterations = 10
	DefaultLogDir        = ".logs"
)

// Config is the resolved process configuration.
type Config struct {
	// OpenAIAPIKey authenticates model calls. Required.
	OpenAIAPIKey string

	// Model is the chat model name passed to the provider.
	Model string

	// MaxIterations caps the agent loop per user request.
	MaxIterations int

	// LogDir is where trace logs are written.
	LogDir string
}

// Load reads .env (if present) and then the environment. A missing
// OPENAI_API_KEY is an error; everything else falls back to defaults.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf(
			"OPENAI_API_KEY not found: set it in the environment or in a .env file")
	}

	cfg := &Config{
		OpenAIAPIKey:  apiKey,
		Model:         envOr("SKYDESK_MODEL", DefaultModel),
		MaxIterations: DefaultMaxIterations,
		LogDir:        envOr("SKYDESK_LOG_DIR", DefaultLogDir),
	}

	if raw := os.Getenv("SKYDESK_MAX_ITERATIONS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("SKYDESK_MAX_ITERATIONS must be a positive integer, got %q", raw)
		}
		cfg.MaxIterations = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
