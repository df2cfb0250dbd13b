package math

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
)

// Upper bounds on loop counts taken from parameters. Exact domains get
// lower series bounds since their operands grow every iteration.
const (
	MaxTerms         = 1000
	MaxExactTerms    = 100
	MaxQuantiles     = 1000
	MaxFactorial     = 5000
	MaxExactExponent = 10000
)

// tool computes one tool's output from its parameters.
type tool func(params map[string]any) (map[string]any, error)

// toolset is the engine instantiated for one numeric domain.
type toolset interface {
	lookup(toolID string) (tool, bool)
	factorSeq(params map[string]any) (iter.Seq[any], error)
}

// tools implements every tool over the numeric type T.
type tools[T any] struct {
	domain   common.Domain[T]
	leniency float64
}

func newTools[T any](domain common.Domain[T], leniency float64) *tools[T] {
	return &tools[T]{domain: domain, leniency: leniency}
}

func (t *tools[T]) lookup(toolID string) (tool, bool) {
	switch toolID {
	// Arithmetic
	case "math.add":
		return t.add, true
	case "math.subtract":
		return t.subtract, true
	case "math.multiply":
		return t.multiply, true
	case "math.divide":
		return t.divide, true
	case "math.modulo":
		return t.modulo, true
	case "math.power":
		return t.power, true
	case "math.sqrt":
		return t.sqrt, true
	case "math.root":
		return t.root, true
	case "math.negate":
		return t.negate, true
	case "math.invert":
		return t.invert, true
	case "math.abs":
		return t.abs, true
	case "math.clamp":
		return t.clamp, true
	case "math.compare":
		return t.compare, true
	case "math.equal":
		return t.equal, true
	case "math.log":
		return t.log, true
	case "math.lerp":
		return t.lerp, true

	// Number theory
	case "math.gcf":
		return t.gcf, true
	case "math.lcm":
		return t.lcm, true
	case "math.is_prime":
		return t.isPrime, true
	case "math.factor":
		return t.factor, true
	case "math.factorial":
		return t.factorial, true

	// Trigonometry
	case "math.sin":
		return t.sin, true
	case "math.cos":
		return t.cos, true
	case "math.tan":
		return t.tan, true
	case "math.sin_fast":
		return t.sinFast, true
	case "math.cos_fast":
		return t.cosFast, true

	// Statistics
	case "math.mean":
		return t.mean, true
	case "math.median":
		return t.median, true
	case "math.variance":
		return t.variance, true
	case "math.stdev":
		return t.stdev, true
	case "math.mean_deviation":
		return t.meanDeviation, true
	case "math.quantiles":
		return t.quantiles, true
	case "math.range":
		return t.valueRange, true
	case "math.min":
		return t.min, true
	case "math.max":
		return t.max, true
	case "math.regression":
		return t.regression, true

	// Constants
	case "math.pi":
		return t.pi, true
	case "math.tau":
		return t.tau, true
	}
	return nil, false
}

// stop returns the budget named by the "terms" parameter, or nil for the
// engine default.
func (t *tools[T]) stop(params map[string]any) (numeric.Stop[T], error) {
	limit := MaxTerms
	if t.domain.Exact {
		limit = MaxExactTerms
	}
	terms, err := common.Count(params, "terms", 0, limit)
	if err != nil || terms == 0 {
		return nil, err
	}
	return numeric.StopAfter[T](terms), nil
}

// atMost rejects v above limit.
func (t *tools[T]) atMost(key string, v T, limit int64) error {
	bound, err := operations.Convert[int64, T](limit)
	if err != nil {
		return err
	}
	c, err := operations.Compare(v, bound)
	if err != nil {
		return err
	}
	if c > 0 {
		return fmt.Errorf("%w: %s must be at most %d", common.ErrInvalidParam, key, limit)
	}
	return nil
}

func (t *tools[T]) result(v T) map[string]any {
	return map[string]any{"result": t.domain.Format(v), "type": t.domain.Name}
}

func (t *tools[T]) unary(params map[string]any, key string, op func(T) (T, error)) (map[string]any, error) {
	x, err := common.Number(t.domain, params, key)
	if err != nil {
		return nil, err
	}
	v, err := op(x)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) binary(params map[string]any, op func(a, b T) (T, error)) (map[string]any, error) {
	a, err := common.Number(t.domain, params, "a")
	if err != nil {
		return nil, err
	}
	b, err := common.Number(t.domain, params, "b")
	if err != nil {
		return nil, err
	}
	v, err := op(a, b)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) fold(params map[string]any, op func(iter.Seq[T]) (T, error)) (map[string]any, error) {
	xs, err := common.Numbers(t.domain, params, "numbers")
	if err != nil {
		return nil, err
	}
	v, err := op(numeric.Values(xs...))
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) predicate(params map[string]any, key string, op func(T) (bool, error)) (map[string]any, error) {
	x, err := common.Number(t.domain, params, key)
	if err != nil {
		return nil, err
	}
	ok, err := op(x)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": ok, "type": t.domain.Name}, nil
}

// literal converts a configuration value into T.
func literal[T any](v float64) (T, error) {
	return operations.Convert[float64, T](v)
}
