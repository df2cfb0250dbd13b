package types

// Category represents service categories
type Category string

const (
	CategoryMath   Category = "math"
	CategoryEngine Category = "engine"
)

// Domain selects the numeric type a tool call is computed in.
type Domain string

const (
	DomainFloat    Domain = "float64"
	DomainInteger  Domain = "int64"
	DomainRational Domain = "rational"
)

// Domains lists the supported domains, default first.
var Domains = []Domain{DomainFloat, DomainInteger, DomainRational}

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`

	// Streams marks tools whose result is a sequence that the stream
	// endpoint sends element by element.
	Streams bool `json:"streams,omitempty"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context describes the caller of a tool.
type Context struct {
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	Transport string `json:"transport,omitempty"`
}

// Result represents a service execution result
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *string        `json:"error,omitempty"`
}
