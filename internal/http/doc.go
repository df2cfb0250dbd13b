// Package http provides HTTP handlers for the numeric engine REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Engine: /specializations
//
// Request bodies are decoded with numbers kept as json.Number, so int64
// and rational inputs arrive exact. A tool that fails computing returns
// 200 with a failed result; only routing problems change the status code.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, specialize.Default, metrics)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
