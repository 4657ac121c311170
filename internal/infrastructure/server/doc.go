// Package server assembles the utilkit HTTP server from configuration.
//
// Middleware order: recovery, tracing, metrics, CORS, then rate limiting
// when enabled. Responses are gzip compressed by gzhttp. GET /metrics serves
// the Prometheus registry.
//
// Example Usage:
//
//	srv, err := server.NewServer(cfg)
//	defer srv.Close()
//	err = srv.Run(ctx)
package server
