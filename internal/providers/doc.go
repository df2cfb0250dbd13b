// Package providers implements the service providers of the numeric engine.
//
// Service providers expose capabilities through a standardized tool-based
// interface. The math provider lives in its own package; this package
// holds the engine provider, which reports on the runtime and the
// specialization cache and can change the log level at runtime.
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	engine := providers.NewEngine(specialize.Default, providers.WithLogLevel(logger))
//	result, err := engine.Execute(ctx, "engine.stats", nil, appCtx)
package providers
