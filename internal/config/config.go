package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Numeric   NumericConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Stream    StreamConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// NumericConfig holds engine tuning.
type NumericConfig struct {
	// SeriesBudget is the outer iteration count of pi and Taylor series
	// when the caller gives no stop predicate.
	SeriesBudget int `envconfig:"NUMERIC_SERIES_BUDGET" default:"100"`

	// Leniency is the default tolerance of math.equal.
	Leniency float64 `envconfig:"NUMERIC_LENIENCY" default:"1e-9"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// StreamConfig holds WebSocket stream configuration.
type StreamConfig struct {
	Enabled        bool  `envconfig:"STREAM_ENABLED" default:"true"`
	MaxMessageSize int64 `envconfig:"STREAM_MAX_MESSAGE_BYTES" default:"1048576"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Numeric.SeriesBudget < 1 {
		return nil, fmt.Errorf("failed to load config: NUMERIC_SERIES_BUDGET must be positive, got %d", cfg.Numeric.SeriesBudget)
	}
	if cfg.Numeric.Leniency < 0 {
		return nil, fmt.Errorf("failed to load config: NUMERIC_LENIENCY must not be negative, got %g", cfg.Numeric.Leniency)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Numeric: NumericConfig{
			SeriesBudget: 100,
			Leniency:     1e-9,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Stream: StreamConfig{
			Enabled:        true,
			MaxMessageSize: 1 << 20,
		},
	}
}
