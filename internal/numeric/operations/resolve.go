package operations

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

func resolveBinary[T any](op specialize.Op, operator string, pick func(*table[T]) func(a, b T) T) (func(a, b T) T, error) {
	return specialize.For[T](op, func() (func(a, b T) T, error) {
		if f := pick(capabilities[T]()); f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T](operator)
	})
}

func resolveUnary[T any](op specialize.Op, operator string, pick func(*table[T]) func(a T) T) (func(a T) T, error) {
	return specialize.For[T](op, func() (func(a T) T, error) {
		if f := pick(capabilities[T]()); f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T](operator)
	})
}

// AddFunc returns the specialized addition of T.
func AddFunc[T any]() (func(a, b T) T, error) {
	return resolveBinary(OpAdd, "addition", func(t *table[T]) func(a, b T) T { return t.add })
}

// SubtractFunc returns the specialized subtraction of T.
func SubtractFunc[T any]() (func(a, b T) T, error) {
	return resolveBinary(OpSubtract, "subtraction", func(t *table[T]) func(a, b T) T { return t.sub })
}

// MultiplyFunc returns the specialized multiplication of T.
func MultiplyFunc[T any]() (func(a, b T) T, error) {
	return resolveBinary(OpMultiply, "multiplication", func(t *table[T]) func(a, b T) T { return t.mul })
}

// DivideFunc returns the specialized division of T. It does not guard
// against a zero divisor; Divide does.
func DivideFunc[T any]() (func(a, b T) T, error) {
	return resolveBinary(OpDivide, "division", func(t *table[T]) func(a, b T) T { return t.div })
}

// ModuloFunc returns the specialized remainder of T, truncated toward zero.
func ModuloFunc[T any]() (func(a, b T) T, error) {
	return resolveBinary(OpModulo, "modulo", func(t *table[T]) func(a, b T) T { return t.mod })
}

// NegateFunc returns the specialized negation of T.
func NegateFunc[T any]() (func(a T) T, error) {
	return resolveUnary(OpNegate, "negation", func(t *table[T]) func(a T) T { return t.neg })
}

// AbsoluteValueFunc returns the specialized absolute value of T.
func AbsoluteValueFunc[T any]() (func(a T) T, error) {
	return resolveUnary(OpAbsolute, "absolute value", func(t *table[T]) func(a T) T { return t.abs })
}

// CompareFunc returns the specialized three-way comparison of T.
func CompareFunc[T any]() (func(a, b T) int, error) {
	return specialize.For[T](OpCompare, func() (func(a, b T) int, error) {
		if f := capabilities[T]().cmp; f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T]("comparison")
	})
}

// EqualFunc returns the specialized equality of T.
func EqualFunc[T any]() (func(a, b T) bool, error) {
	return specialize.For[T](OpEqual, func() (func(a, b T) bool, error) {
		if f := capabilities[T]().equal; f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T]("equality")
	})
}

// IsIntegerFunc returns the specialized integer test of T.
func IsIntegerFunc[T any]() (func(a T) bool, error) {
	return specialize.For[T](OpIsInteger, func() (func(a T) bool, error) {
		if f := capabilities[T]().isInteger; f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T]("integer test")
	})
}

// FromIntFunc returns the specialized int64 constructor of T.
func FromIntFunc[T any]() (func(v int64) T, error) {
	return specialize.For[T](OpFromInt, func() (func(v int64) T, error) {
		if f := capabilities[T]().fromInt; f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T]("int64 conversion")
	})
}

// ToFloatFunc returns the specialized float64 conversion of T.
func ToFloatFunc[T any]() (func(a T) float64, error) {
	return specialize.For[T](OpToFloat, func() (func(a T) float64, error) {
		if f := capabilities[T]().toFloat; f != nil {
			return f, nil
		}
		return nil, numeric.Capability[T]("float64 conversion")
	})
}

// Resolver resolves several operators of T and keeps the first error, so
// algorithm code can resolve everything it needs and check once.
//
//	var r operations.Resolver[T]
//	add, div := r.Add(), r.Divide()
//	if err := r.Err(); err != nil { ... }
type Resolver[T any] struct {
	err error
}

// Err returns the first resolution error.
func (r *Resolver[T]) Err() error { return r.err }

func keep[F any](r *error, f F, err error) F {
	if err != nil && *r == nil {
		*r = err
	}
	return f
}

func (r *Resolver[T]) Add() func(a, b T) T {
	f, err := AddFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Subtract() func(a, b T) T {
	f, err := SubtractFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Multiply() func(a, b T) T {
	f, err := MultiplyFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Divide() func(a, b T) T {
	f, err := DivideFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Modulo() func(a, b T) T {
	f, err := ModuloFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Negate() func(a T) T {
	f, err := NegateFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) AbsoluteValue() func(a T) T {
	f, err := AbsoluteValueFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Compare() func(a, b T) int {
	f, err := CompareFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) Equal() func(a, b T) bool {
	f, err := EqualFunc[T]()
	return keep(&r.err, f, err)
}

func (r *Resolver[T]) IsInteger() func(a T) bool {
	f, err := IsIntegerFunc[T]()
	return keep(&r.err, f, err)
}

// Int converts n to T. It returns the zero value of T after an error.
func (r *Resolver[T]) Int(n int64) T {
	f, err := FromIntFunc[T]()
	if keep(&r.err, f, err) == nil {
		var zero T
		return zero
	}
	return f(n)
}
