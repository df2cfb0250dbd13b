// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Subsystems log through named children (Component), so the
// specialization cache logs as "specialize" and the registry as "registry".
// The level can be changed at runtime with SetLevel; the server exposes it
// through the engine.log_level tool.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info"})
//	if err != nil {
//		return err
//	}
//	defer logger.Close()
//	specialize.Default.SetLogger(logger.Component("specialize"))
//	logger.Info("Server starting", zap.String("port", "8000"))
package logging
