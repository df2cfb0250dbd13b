package operations

import (
	"fmt"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

func checkBlend[T any](name string, blend T) error {
	var r Resolver[T]
	cmp := r.Compare()
	zero, one := r.Int(0), r.Int(1)
	if err := r.Err(); err != nil {
		return numeric.Errorf[T](name, err)
	}
	if cmp(blend, zero) < 0 || cmp(blend, one) > 0 {
		return numeric.Errorf[T](name, fmt.Errorf("%w: blend must be within [0, 1]", numeric.ErrOutOfRange))
	}
	return nil
}

// LinearInterpolation returns a + (b - a) * blend for blend in [0, 1].
func LinearInterpolation[T any](a, b, blend T) (T, error) {
	if err := checkBlend("LinearInterpolation", blend); err != nil {
		return a, err
	}
	var r Resolver[T]
	sub := r.Subtract()
	if err := r.Err(); err != nil {
		return a, numeric.Errorf[T]("LinearInterpolation", err)
	}
	fma, err := MultiplyAddFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("LinearInterpolation", err)
	}
	return fma(sub(b, a), blend, a), nil
}

// SphericalInterpolation is not implemented. The blend is still validated
// so out-of-range input reports ErrOutOfRange.
func SphericalInterpolation[T any](a, b, blend T) (T, error) {
	if err := checkBlend("SphericalInterpolation", blend); err != nil {
		return a, err
	}
	return a, numeric.Errorf[T]("SphericalInterpolation", numeric.ErrNotImplemented)
}
