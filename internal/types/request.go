package types

// ExecuteRequest asks for one tool execution
type ExecuteRequest struct {
	ToolID string         `json:"tool_id"`
	Params map[string]any `json:"params"`
}

// DiscoverRequest asks for services matching an intent
type DiscoverRequest struct {
	Intent string `json:"intent"`
	Limit  int    `json:"limit,omitempty"`
}

// StreamMessage is one frame on the stream endpoint. Clients send
// "execute" frames; the server answers with "item" frames followed by a
// single "done" or "error" frame, or with one "result" frame for tools
// that do not stream.
type StreamMessage struct {
	Type   string         `json:"type"`
	ID     string         `json:"id,omitempty"`
	ToolID string         `json:"tool_id,omitempty"`
	Params map[string]any `json:"params,omitempty"`
	Index  int            `json:"index,omitempty"`
	Value  any            `json:"value,omitempty"`
	Result *Result        `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}
