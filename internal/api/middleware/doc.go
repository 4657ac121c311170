// Package middleware provides the HTTP middleware of the utilkit API.
//
//   - CORS: cross-origin access via gin-contrib/cors
//   - RateLimit: per-IP token bucket (golang.org/x/time/rate) with idle
//     client eviction
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
