package trigonometry

import (
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/utilities"
)

type angles[T any] struct {
	zero, pi, tau T
	add, sub      func(a, b T) T
	mod           func(a, b T) T
	cmp           func(a, b T) int
}

func resolveAngles[T any]() (*angles[T], error) {
	var r operations.Resolver[T]
	a := &angles[T]{
		zero: r.Int(0),
		add:  r.Add(),
		sub:  r.Subtract(),
		mod:  r.Modulo(),
		cmp:  r.Compare(),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	var err error
	if a.pi, err = utilities.Pi[T](); err != nil {
		return nil, err
	}
	if a.tau, err = utilities.Pi2[T](); err != nil {
		return nil, err
	}
	return a, nil
}

// symmetric reduces x into [-π, π].
func (a *angles[T]) symmetric(x T) T {
	x = a.mod(x, a.tau)
	if a.cmp(x, a.pi) > 0 {
		return a.sub(x, a.tau)
	}
	if a.cmp(x, a.sub(a.zero, a.pi)) < 0 {
		return a.add(x, a.tau)
	}
	return x
}

// period reduces x into [0, 2π).
func (a *angles[T]) period(x T) T {
	x = a.mod(x, a.tau)
	if a.cmp(x, a.zero) < 0 {
		return a.add(x, a.tau)
	}
	return x
}
