// Command server runs the utilkit HTTP API.
//
// Configuration comes from the environment (PORT, HOST, LOG_LEVEL, LOG_DEV,
// RATE_LIMIT_*, CALC_PRECISION, FORMAT_TRUNCATE_SUFFIX, FORMAT_MAX_LENGTH)
// layered over an optional YAML or TOML file.
//
// Usage:
//
//	server -config utilkit.yaml -port 8080
package main
