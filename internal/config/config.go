package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration for the assistant service.
type Config struct {
	// Server
	Port           int    `env:"PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`    // "json" or "text"
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"60"` // seconds

	// Document store
	StoreProvider string `env:"STORE_PROVIDER" envDefault:"postgres"` // "postgres" or "none"
	DBURL         string `env:"DB_URL"`

	// Generative client
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" or "openai"
	GeminiKey   string `env:"GEMINI_API_KEY"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"gemini-1.5-flash"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
