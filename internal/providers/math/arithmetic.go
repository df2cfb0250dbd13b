package math

import (
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/providers/math/common"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// arithmeticTools returns arithmetic and comparison tool definitions
func arithmeticTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add one or more numbers",
			Parameters:  []types.Parameter{numbersParam("Numbers to add"), typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters:  []types.Parameter{aParam, bParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply one or more numbers",
			Parameters:  []types.Parameter{numbersParam("Numbers to multiply"), typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide a by b; integers truncate toward zero",
			Parameters:  []types.Parameter{aParam, bParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.modulo",
			Name:        "Modulo",
			Description: "Remainder of a divided by b, with the sign of a",
			Parameters:  []types.Parameter{aParam, bParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to exponent; exact types need a non-negative integer exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
				typeParam,
			},
			Returns: "number",
		},
		{
			ID:          "math.sqrt",
			Name:        "Square Root",
			Description: "Square root of a non-negative number",
			Parameters:  []types.Parameter{xParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.root",
			Name:        "Root",
			Description: "n-th root of x",
			Parameters: []types.Parameter{
				xParam,
				{Name: "n", Type: "number", Description: "Degree of the root", Required: true},
				typeParam,
			},
			Returns: "number",
		},
		{
			ID:          "math.negate",
			Name:        "Negate",
			Description: "Additive inverse of x",
			Parameters:  []types.Parameter{xParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.invert",
			Name:        "Invert",
			Description: "Multiplicative inverse of x",
			Parameters:  []types.Parameter{xParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.abs",
			Name:        "Absolute Value",
			Description: "Absolute value of x",
			Parameters:  []types.Parameter{xParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.clamp",
			Name:        "Clamp",
			Description: "Limit x to the interval [lo, hi]",
			Parameters: []types.Parameter{
				xParam,
				{Name: "lo", Type: "number", Description: "Lower bound", Required: true},
				{Name: "hi", Type: "number", Description: "Upper bound", Required: true},
				typeParam,
			},
			Returns: "number",
		},
		{
			ID:          "math.compare",
			Name:        "Compare",
			Description: "Three-way comparison of a and b (-1, 0, 1)",
			Parameters:  []types.Parameter{aParam, bParam, typeParam},
			Returns:     "number",
		},
		{
			ID:          "math.equal",
			Name:        "Equal",
			Description: "Whether a and b differ by at most leniency",
			Parameters: []types.Parameter{
				aParam, bParam,
				{Name: "leniency", Type: "number", Description: "Allowed difference (server default when omitted)", Required: false},
				typeParam,
			},
			Returns: "boolean",
		},
		{
			ID:          "math.log",
			Name:        "Logarithm",
			Description: "Logarithm of x; natural when base is omitted",
			Parameters: []types.Parameter{
				xParam,
				{Name: "base", Type: "number", Description: "Logarithm base", Required: false},
				typeParam,
			},
			Returns: "number",
		},
		{
			ID:          "math.lerp",
			Name:        "Linear Interpolation",
			Description: "Blend between a and b with blend in [0, 1]",
			Parameters: []types.Parameter{
				aParam, bParam,
				{Name: "blend", Type: "number", Description: "Blend factor in [0, 1]", Required: true},
				typeParam,
			},
			Returns: "number",
		},
	}
}

func (t *tools[T]) add(params map[string]any) (map[string]any, error) {
	return t.fold(params, operations.AddSeq[T])
}

func (t *tools[T]) subtract(params map[string]any) (map[string]any, error) {
	return t.binary(params, operations.Subtract[T])
}

func (t *tools[T]) multiply(params map[string]any) (map[string]any, error) {
	return t.fold(params, operations.MultiplySeq[T])
}

func (t *tools[T]) divide(params map[string]any) (map[string]any, error) {
	return t.binary(params, operations.Divide[T])
}

func (t *tools[T]) modulo(params map[string]any) (map[string]any, error) {
	return t.binary(params, operations.Modulo[T])
}

func (t *tools[T]) power(params map[string]any) (map[string]any, error) {
	base, err := common.Number(t.domain, params, "base")
	if err != nil {
		return nil, err
	}
	exponent, err := common.Number(t.domain, params, "exponent")
	if err != nil {
		return nil, err
	}
	if t.domain.Exact {
		if err := t.atMost("exponent", exponent, MaxExactExponent); err != nil {
			return nil, err
		}
	}
	v, err := operations.Power(base, exponent)
	if err != nil {
		return nil, err
	}
	return t.result(v), nil
}

func (t *tools[T]) sqrt(params map[string]any) (map[string]any, error) {
	return t.unary(params, "x", operations.SquareRoot[T])
}

func (t *tools[T]) root(params map[string]any) (map[string]any, error) {
	n, err := common.Number(t.domain, params, "n")
	if err != nil {
		return nil, err
	}
	return t.unary(params, "x", func(x T) (T, error) { return operations.Root(x, n) })
}

func (t *tools[T]) negate(params map[string]any) (map[string]any, error) {
	return t.unary(params, "x", operations.Negate[T])
}

func (t *tools[T]) invert(params map[string]any) (map[string]any, error) {
	return t.unary(params, "x", operations.Invert[T])
}

func (t *tools[T]) abs(params map[string]any) (map[string]any, error) {
	return t.unary(params, "x", operations.AbsoluteValue[T])
}

func (t *tools[T]) clamp(params map[string]any) (map[string]any, error) {
	lo, err := common.Number(t.domain, params, "lo")
	if err != nil {
		return nil, err
	}
	hi, err := common.Number(t.domain, params, "hi")
	if err != nil {
		return nil, err
	}
	return t.unary(params, "x", func(x T) (T, error) { return operations.Clamp(x, lo, hi) })
}

func (t *tools[T]) compare(params map[string]any) (map[string]any, error) {
	a, err := common.Number(t.domain, params, "a")
	if err != nil {
		return nil, err
	}
	b, err := common.Number(t.domain, params, "b")
	if err != nil {
		return nil, err
	}
	c, err := operations.Compare(a, b)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": c, "type": t.domain.Name}, nil
}

func (t *tools[T]) equal(params map[string]any) (map[string]any, error) {
	a, err := common.Number(t.domain, params, "a")
	if err != nil {
		return nil, err
	}
	b, err := common.Number(t.domain, params, "b")
	if err != nil {
		return nil, err
	}
	leniency, ok, err := common.OptionalNumber(t.domain, params, "leniency")
	if err != nil {
		return nil, err
	}
	if !ok {
		if leniency, err = literal[T](t.leniency); err != nil {
			return nil, err
		}
	}
	eq, err := operations.EqualWithLeniency(a, b, leniency)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": eq, "type": t.domain.Name}, nil
}

func (t *tools[T]) log(params map[string]any) (map[string]any, error) {
	base, ok, err := common.OptionalNumber(t.domain, params, "base")
	if err != nil {
		return nil, err
	}
	if !ok {
		return t.unary(params, "x", operations.NaturalLogarithm[T])
	}
	return t.unary(params, "x", func(x T) (T, error) { return operations.Logarithm(x, base) })
}

func (t *tools[T]) lerp(params map[string]any) (map[string]any, error) {
	blend, err := common.Number(t.domain, params, "blend")
	if err != nil {
		return nil, err
	}
	return t.binary(params, func(a, b T) (T, error) { return operations.LinearInterpolation(a, b, blend) })
}
