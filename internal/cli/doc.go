// Package cli implements the utilkit command line: calc, format and tools.
//
// Global flags --format (text|json), --precision and --suffix override the
// environment configuration. Exit codes: 0 on success, 1 when an evaluation
// is rejected, 2 on usage or configuration errors.
package cli
