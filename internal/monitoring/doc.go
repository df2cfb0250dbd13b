/*
Package monitoring provides Prometheus metrics for the numeric engine server.

# Overview

Metrics live on a private registry so tests and multiple servers in one
process do not collide. They cover HTTP requests, tool executions,
specialization builds and WebSocket traffic, plus gauges read from the
specialization cache at scrape time.

# Usage

	metrics := monitoring.NewMetrics(specialize.Default)
	specialize.Default.SetObserver(metrics)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "math", "math.median")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
