// Package config provides 12-factor configuration management for utilkit.
//
// Configuration is loaded from environment variables with defaults in struct
// tags. An optional YAML or TOML file named by UTILKIT_CONFIG supplies values
// for anything the environment leaves unset.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Calculator: Rounding precision
//   - Formatter: Truncate suffix and default length
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Addr())
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CALC_PRECISION
//   - FORMAT_TRUNCATE_SUFFIX, FORMAT_MAX_LENGTH
//   - UTILKIT_CONFIG
//
// Example file (utilkit.yaml):
//
//	server:
//	  port: "9000"
//	calculator:
//	  precision: 4
//	formatter:
//	  truncate_suffix: "…"
package config
