package operations

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

// NaturalLogarithmFunc returns the specialized natural logarithm of T.
// Only types convertible to and from float64 are supported; others are
// ErrNotImplemented.
func NaturalLogarithmFunc[T any]() (func(a T) (T, error), error) {
	return specialize.For[T](OpLogarithm, func() (func(a T) (T, error), error) {
		t := capabilities[T]()
		if t.toFloat == nil || t.fromFloat == nil {
			return nil, fmt.Errorf("%w: logarithm of %s", numeric.ErrNotImplemented, numeric.TypeName[T]())
		}
		toFloat, fromFloat := t.toFloat, t.fromFloat
		return func(a T) (T, error) {
			x := toFloat(a)
			if x <= 0 || math.IsNaN(x) {
				var zero T
				return zero, fmt.Errorf("%w: logarithm of a non-positive value", numeric.ErrDomain)
			}
			return fromFloat(math.Log(x)), nil
		}, nil
	})
}

// NaturalLogarithm returns ln(a).
func NaturalLogarithm[T any](a T) (T, error) {
	f, err := NaturalLogarithmFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("NaturalLogarithm", err)
	}
	r, err := f(a)
	return r, numeric.Errorf[T]("NaturalLogarithm", err)
}

// Logarithm returns the logarithm of value in base. Base one is ErrDomain.
func Logarithm[T any](value, base T) (T, error) {
	if _, err := NaturalLogarithmFunc[T](); err != nil {
		return value, numeric.Errorf[T]("Logarithm", err)
	}
	t := capabilities[T]()
	x, b := t.toFloat(value), t.toFloat(base)
	switch {
	case x <= 0 || b <= 0 || math.IsNaN(x) || math.IsNaN(b):
		return value, numeric.Errorf[T]("Logarithm", fmt.Errorf("%w: logarithm of a non-positive value", numeric.ErrDomain))
	case b == 1:
		return value, numeric.Errorf[T]("Logarithm", fmt.Errorf("%w: logarithm base of one", numeric.ErrDomain))
	}
	return t.fromFloat(math.Log(x) / math.Log(b)), nil
}

// Exponential is not implemented.
func Exponential[T any](a T) (T, error) {
	return a, numeric.Errorf[T]("Exponential", numeric.ErrNotImplemented)
}
