package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/GriffinCanCode/numengine/internal/types"
)

var (
	// ErrMissingParam is returned when a required parameter is absent.
	ErrMissingParam = errors.New("missing parameter")

	// ErrInvalidParam is returned when a parameter has the wrong shape.
	ErrInvalidParam = errors.New("invalid parameter")
)

// Domain binds a numeric type to its wire representation.
type Domain[T any] struct {
	Name   types.Domain
	Parse  func(v any) (T, error)
	Format func(v T) any

	// Exact domains never lose precision, so iterative work on them grows
	// with the size of the operands.
	Exact bool
}

// Float is the float64 domain.
var Float = Domain[float64]{
	Name:   types.DomainFloat,
	Parse:  parseFloat,
	Format: func(v float64) any { return v },
}

// Integer is the int64 domain.
var Integer = Domain[int64]{
	Name:   types.DomainInteger,
	Parse:  parseInt,
	Format: func(v int64) any { return v },
}

// Rational is the exact *big.Rat domain.
var Rational = Domain[*big.Rat]{
	Name:   types.DomainRational,
	Parse:  parseRat,
	Format: func(v *big.Rat) any { return v.RatString() },
	Exact:  true,
}

// DomainOf returns the domain named by the "type" parameter.
func DomainOf(params map[string]any) (types.Domain, error) {
	raw, ok := params["type"]
	if !ok || raw == nil {
		return types.DomainFloat, nil
	}
	name, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: type must be a string", ErrInvalidParam)
	}
	for _, d := range types.Domains {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown type %q", ErrInvalidParam, name)
}

// Number extracts a required scalar.
func Number[T any](d Domain[T], params map[string]any, key string) (T, error) {
	var zero T
	raw, ok := params[key]
	if !ok || raw == nil {
		return zero, fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	v, err := d.Parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// OptionalNumber extracts a scalar, reporting whether it was present.
func OptionalNumber[T any](d Domain[T], params map[string]any, key string) (T, bool, error) {
	if raw, ok := params[key]; !ok || raw == nil {
		var zero T
		return zero, false, nil
	}
	v, err := Number(d, params, key)
	return v, err == nil, err
}

// Numbers extracts a required array.
func Numbers[T any](d Domain[T], params map[string]any, key string) ([]T, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingParam, key)
	}
	var items []any
	switch arr := raw.(type) {
	case []any:
		items = arr
	case []float64:
		items = make([]any, len(arr))
		for i, v := range arr {
			items[i] = v
		}
	default:
		return nil, fmt.Errorf("%w: %s must be an array", ErrInvalidParam, key)
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := d.Parse(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Count extracts an optional integer in [1, limit], returning def when
// absent.
func Count(params map[string]any, key string, def, limit int) (int, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return def, nil
	}
	v, err := parseInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidParam, key)
	}
	if v > int64(limit) {
		return 0, fmt.Errorf("%w: %s must be at most %d", ErrInvalidParam, key, limit)
	}
	return int(v), nil
}

// Flag extracts an optional boolean.
func Flag(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

// FormatAll formats each element of vs.
func FormatAll[T any](d Domain[T], vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = d.Format(v)
	}
	return out
}

func parseFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidParam, err)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidParam, n)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidParam, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: number must be finite", ErrInvalidParam)
	}
	return f, nil
}

func parseInt(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidParam, n)
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidParam, n)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidParam, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %T is not an integer", ErrInvalidParam, v)
	}
}

func parseRat(v any) (*big.Rat, error) {
	switch n := v.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(n)), nil
	case int64:
		return new(big.Rat).SetInt64(n), nil
	case float64:
		r := new(big.Rat).SetFloat64(n)
		if r == nil {
			return nil, fmt.Errorf("%w: number must be finite", ErrInvalidParam)
		}
		return r, nil
	case json.Number:
		return ratString(string(n))
	case string:
		return ratString(n)
	default:
		return nil, fmt.Errorf("%w: %T is not a rational", ErrInvalidParam, v)
	}
}

func ratString(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a rational", ErrInvalidParam, s)
	}
	return r, nil
}
