// Package http provides HTTP handlers and routing for the utilkit REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Evaluators: /calculate, /format
//   - Services: /services, /services/discover, /services/execute
//
// /calculate and /format accept JSON or URL-encoded form bodies. Clients
// sending Accept: text/html get a rendered result card instead of JSON.
// Evaluation errors answer 400 with {"error", "code"}.
//
// Example Usage:
//
//	handlers := http.NewHandlers(calc, formatter, registry, metrics, logger)
//	handlers.Register(router)
package http
