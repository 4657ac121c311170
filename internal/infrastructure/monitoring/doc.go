/*
Package monitoring provides Prometheus metrics for the HTTP service.

# Overview

Each Metrics value owns a private prometheus.Registry with Go runtime and
process collectors, HTTP request metrics, per-operation evaluation metrics
and registry tool execution metrics.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "calculator", "divide")
	// ... evaluate ...
	timer.StopEvaluation("DIVISION_BY_ZERO")

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
