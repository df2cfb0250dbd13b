// Package ws provides the WebSocket stream endpoint.
//
// Clients execute tools over a long-lived connection. Tools marked as
// streaming (math.factor) send their sequence one element per frame as it
// is computed; every other tool answers with a single result frame.
//
// Message Types (Client → Server):
//   - execute: Run tool_id with params; id is echoed back
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Welcome message
//   - item: One element of a streamed sequence, with its index
//   - done: Sequence finished; index holds the element count
//   - result: Complete result of a non-streaming tool
//   - pong: Ping reply
//   - error: Request failed
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, metrics, logger, 1<<20)
//	router.GET("/stream", handler.HandleConnection)
package ws
