package utilities

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

// Constant names, used as specialization keys.
const (
	ConstZero           specialize.Op = "Constant.Zero"
	ConstOne            specialize.Op = "Constant.One"
	ConstTwo            specialize.Op = "Constant.Two"
	ConstThree          specialize.Op = "Constant.Three"
	ConstFour           specialize.Op = "Constant.Four"
	ConstTen            specialize.Op = "Constant.Ten"
	ConstNegativeOne    specialize.Op = "Constant.NegativeOne"
	ConstPi             specialize.Op = "Constant.Pi"
	ConstPi2            specialize.Op = "Constant.Pi2"
	ConstPiOver2        specialize.Op = "Constant.PiOver2"
	ConstPi3Over2       specialize.Op = "Constant.Pi3Over2"
	ConstQuadraticSineA specialize.Op = "Constant.QuadraticSineA"
	ConstQuadraticSineB specialize.Op = "Constant.QuadraticSineB"
)

func literal[T any](name specialize.Op, n int) (T, error) {
	return specialize.For[T](name, func() (T, error) {
		return operations.Convert[int, T](n)
	})
}

// Zero returns 0 in T.
func Zero[T any]() (T, error) { return literal[T](ConstZero, 0) }

// One returns 1 in T.
func One[T any]() (T, error) { return literal[T](ConstOne, 1) }

// Two returns 2 in T.
func Two[T any]() (T, error) { return literal[T](ConstTwo, 2) }

// Three returns 3 in T.
func Three[T any]() (T, error) { return literal[T](ConstThree, 3) }

// Four returns 4 in T.
func Four[T any]() (T, error) { return literal[T](ConstFour, 4) }

// Ten returns 10 in T.
func Ten[T any]() (T, error) { return literal[T](ConstTen, 10) }

// NegativeOne returns -1 in T. Unsigned types wrap.
func NegativeOne[T any]() (T, error) { return literal[T](ConstNegativeOne, -1) }

// Pi returns pi in T, computed once with the default stop predicate.
// The value is frozen at first use; SetDefaultBudget does not recompute it.
func Pi[T any]() (T, error) {
	return specialize.For[T](ConstPi, func() (T, error) {
		return ComputePi[T](nil)
	})
}

func derived[T any](name specialize.Op, f func(pi T, r *operations.Resolver[T]) T) (T, error) {
	return specialize.For[T](name, func() (T, error) {
		pi, err := Pi[T]()
		if err != nil {
			return pi, err
		}
		var r operations.Resolver[T]
		v := f(pi, &r)
		if err := r.Err(); err != nil {
			var zero T
			return zero, numeric.Errorf[T](string(name), err)
		}
		return v, nil
	})
}

// Pi2 returns 2π in T.
func Pi2[T any]() (T, error) {
	return derived(ConstPi2, func(pi T, r *operations.Resolver[T]) T {
		return r.Multiply()(r.Int(2), pi)
	})
}

// PiOver2 returns π/2 in T.
func PiOver2[T any]() (T, error) {
	return derived(ConstPiOver2, func(pi T, r *operations.Resolver[T]) T {
		return r.Divide()(pi, r.Int(2))
	})
}

// Pi3Over2 returns 3π/2 in T.
func Pi3Over2[T any]() (T, error) {
	return derived(ConstPi3Over2, func(pi T, r *operations.Resolver[T]) T {
		return r.Divide()(r.Multiply()(r.Int(3), pi), r.Int(2))
	})
}

// QuadraticSineA returns 4/π², the coefficient of the quadratic sine on [0, π).
func QuadraticSineA[T any]() (T, error) {
	return derived(ConstQuadraticSineA, func(pi T, r *operations.Resolver[T]) T {
		mul := r.Multiply()
		return r.Divide()(r.Int(4), mul(pi, pi))
	})
}

// QuadraticSineB returns -4/π², the coefficient of the quadratic sine on [π, 2π).
func QuadraticSineB[T any]() (T, error) {
	return derived(ConstQuadraticSineB, func(pi T, r *operations.Resolver[T]) T {
		mul := r.Multiply()
		return r.Divide()(r.Int(-4), mul(pi, pi))
	})
}
