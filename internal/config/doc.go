// Package config provides 12-factor configuration management for the
// numeric engine server.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Numeric: series iteration budget and default equality tolerance
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Stream: WebSocket tool execution
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	numeric.SetDefaultBudget(cfg.Numeric.SeriesBudget)
//
// Environment Variables:
//   - PORT, HOST
//   - NUMERIC_SERIES_BUDGET, NUMERIC_LENIENCY
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - STREAM_ENABLED, STREAM_MAX_MESSAGE_BYTES
package config
