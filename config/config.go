// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from environment
// variables, optionally seeded from a .env file.
type Config struct {
	// Provider credentials. A gateway is wired only when its key is set.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	GoogleAPIKey    string `env:"GEMINI_API_KEY"`
	DeepSeekAPIKey  string `env:"DEEPSEEK_API_KEY"`

	// DefaultModel is used when a request does not name a model.
	DefaultModel string `env:"RELAY_DEFAULT_MODEL" envDefault:"deepseek-chat"`

	// FXMultiplier scales all model prices, for billing in a currency
	// other than USD.
	FXMultiplier float64 `env:"RELAY_FX_MULTIPLIER" envDefault:"1.0"`

	// MaxToolSteps bounds the tool invocation loop per request.
	MaxToolSteps int `env:"RELAY_MAX_TOOL_STEPS" envDefault:"10"`

	// CatalogPath optionally points at a YAML model catalog that
	// replaces the built-in one.
	CatalogPath string `env:"RELAY_CATALOG_PATH"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `env:"RELAY_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; missing files are
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if cfg.MaxToolSteps < 1 {
		return nil, fmt.Errorf("config: RELAY_MAX_TOOL_STEPS must be positive, got %d", cfg.MaxToolSteps)
	}
	if cfg.FXMultiplier <= 0 {
		return nil, fmt.Errorf("config: RELAY_FX_MULTIPLIER must be positive, got %g", cfg.FXMultiplier)
	}
	return cfg, nil
}
