// Package math exposes the numeric engine as the "math" service.
//
// Every tool is implemented once, generically, and instantiated for each
// numeric domain (float64, int64 and *big.Rat). The optional "type"
// parameter picks the instantiation per call:
//
//	{"tool_id": "math.divide", "params": {"a": "1", "b": "3", "type": "rational"}}
//
// returns "1/3". Engine errors are reported as failed results carrying the
// error text; they never fail the transport.
//
// math.factor also streams its factors through Provider.Stream.
package math
