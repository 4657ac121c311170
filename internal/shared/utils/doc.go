// Package utils provides input validation shared by the HTTP handlers and
// the CLI: size limits, tool ID and category patterns.
package utils
