// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment.
//
// APIKey is deliberately not marked required: the server should start
// without it and fail individual tool calls with an actionable message,
// rather than refuse to come up at all.
type Config struct {
	// APIKey authenticates against the Gemini API (GEMINI_API_KEY).
	APIKey string `env:"GEMINI_API_KEY"`

	// BaseURL is the REST endpoint prefix; overridable for testing.
	BaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// Timeout bounds a single generateContent round trip.
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`

	// LogLevel is a logrus level name ("debug", "info", "warn", ...).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
