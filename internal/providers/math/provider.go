package math

import (
	"context"
	"fmt"
	"iter"
	"math/big"

	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// DefaultLeniency is the math.equal tolerance when none is configured.
const DefaultLeniency = 1e-9

// Provider implements mathematical operations over the numeric engine
type Provider struct {
	float    *tools[float64]
	integer  *tools[int64]
	rational *tools[*big.Rat]
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	leniency float64
}

// WithLeniency sets the default tolerance of math.equal.
func WithLeniency(leniency float64) Option {
	return func(o *options) { o.leniency = leniency }
}

// NewProvider creates a math provider with one toolset per numeric domain
func NewProvider(opts ...Option) *Provider {
	o := options{leniency: DefaultLeniency}
	for _, opt := range opts {
		opt(&o)
	}

	return &Provider{
		float:    newTools(common.Float, o.leniency),
		integer:  newTools(common.Integer, o.leniency),
		rational: newTools(common.Rational, o.leniency),
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, arithmeticTools()...)
	tools = append(tools, theoryTools()...)
	tools = append(tools, trigTools()...)
	tools = append(tools, statsTools()...)
	tools = append(tools, constantsTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Generic numeric engine over float64, int64 and exact rationals",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"number-theory",
			"trigonometry",
			"statistics",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes to the toolset of the requested domain
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]any, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// gonum-backed tools work on float64 regardless of type
	switch toolID {
	case "math.correlation":
		return common.Respond(correlation(params))
	case "math.covariance":
		return common.Respond(covariance(params))
	}

	ts, err := m.toolset(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	fn, ok := ts.lookup(toolID)
	if !ok {
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
	return common.Respond(fn(params))
}

// Stream returns the elements of a sequence-valued tool one at a time.
func (m *Provider) Stream(ctx context.Context, toolID string, params map[string]any) (iter.Seq[any], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ts, err := m.toolset(params)
	if err != nil {
		return nil, err
	}
	switch toolID {
	case "math.factor":
		return ts.factorSeq(params)
	default:
		return nil, fmt.Errorf("tool %s does not stream", toolID)
	}
}

func (m *Provider) toolset(params map[string]any) (toolset, error) {
	domain, err := common.DomainOf(params)
	if err != nil {
		return nil, err
	}
	switch domain {
	case types.DomainInteger:
		return m.integer, nil
	case types.DomainRational:
		return m.rational, nil
	default:
		return m.float, nil
	}
}
