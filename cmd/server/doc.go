// Command server runs the numeric engine HTTP and WebSocket service.
//
// Configuration comes from the environment (see internal/config); flags
// override the listen address and logging mode:
//
//	server -port 8000 -host 0.0.0.0 -dev
package main
