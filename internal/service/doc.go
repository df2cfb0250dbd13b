// Package service provides the service registry that exposes the numeric
// engine as callable tools.
//
// The registry maintains a catalog of service providers and handles
// service discovery, tool execution and relevance scoring.
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Intent-based discovery with scoring over names, tools and capabilities
//   - Tool execution with per-call metrics and failure logging
//
// Example Usage:
//
//	registry := service.NewRegistry(service.WithLogger(logger))
//	registry.Register(math.NewProvider(cfg.Numeric.Leniency))
//	services := registry.Discover("median of a list", 5)
//	result, err := registry.Execute(ctx, "math.median", params, appCtx)
package service
