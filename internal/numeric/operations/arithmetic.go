package operations

import (
	"fmt"
	"iter"
	"math"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

const (
	opCheckedDivide specialize.Op = "CheckedDivide"
	opCheckedModulo specialize.Op = "CheckedModulo"
)

// Add returns a + b.
func Add[T any](a, b T) (T, error) {
	return AddSeq(numeric.Values(a, b))
}

// AddMany returns a + b + c + rest...
func AddMany[T any](a, b, c T, rest ...T) (T, error) {
	return AddSeq(numeric.Many(a, b, c, rest...))
}

// AddSeq sums seq left to right.
func AddSeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := AddFunc[T]()
	return fold("Add", seq, f, err)
}

// Subtract returns a - b.
func Subtract[T any](a, b T) (T, error) {
	return SubtractSeq(numeric.Values(a, b))
}

// SubtractMany returns a - b - c - rest...
func SubtractMany[T any](a, b, c T, rest ...T) (T, error) {
	return SubtractSeq(numeric.Many(a, b, c, rest...))
}

// SubtractSeq subtracts every following element from the first.
func SubtractSeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := SubtractFunc[T]()
	return fold("Subtract", seq, f, err)
}

// Multiply returns a * b.
func Multiply[T any](a, b T) (T, error) {
	return MultiplySeq(numeric.Values(a, b))
}

// MultiplyMany returns a * b * c * rest...
func MultiplyMany[T any](a, b, c T, rest ...T) (T, error) {
	return MultiplySeq(numeric.Many(a, b, c, rest...))
}

// MultiplySeq multiplies seq left to right.
func MultiplySeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := MultiplyFunc[T]()
	return fold("Multiply", seq, f, err)
}

func checked[T any](op specialize.Op, operator string, pick func(*table[T]) func(a, b T) T) (func(a, b T) (T, error), error) {
	return specialize.For[T](op, func() (func(a, b T) (T, error), error) {
		t := capabilities[T]()
		f := pick(t)
		if f == nil {
			return nil, numeric.Capability[T](operator)
		}
		if t.equal == nil || !t.hasZero {
			return nil, numeric.Capability[T]("zero test")
		}
		equal, zero := t.equal, t.zero
		return func(a, b T) (T, error) {
			if equal(b, zero) {
				var z T
				return z, numeric.ErrDivideByZero
			}
			return f(a, b), nil
		}, nil
	})
}

// Divide returns a / b. A zero divisor is ErrDivideByZero for every type.
func Divide[T any](a, b T) (T, error) {
	return DivideSeq(numeric.Values(a, b))
}

// DivideMany returns a / b / c / rest...
func DivideMany[T any](a, b, c T, rest ...T) (T, error) {
	return DivideSeq(numeric.Many(a, b, c, rest...))
}

// DivideSeq divides the first element by every following element.
func DivideSeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := checked(opCheckedDivide, "division", func(t *table[T]) func(a, b T) T { return t.div })
	return foldErr("Divide", seq, f, err)
}

// Modulo returns the remainder of a / b, truncated toward zero.
func Modulo[T any](a, b T) (T, error) {
	return ModuloSeq(numeric.Values(a, b))
}

// ModuloMany returns ((a mod b) mod c) mod rest...
func ModuloMany[T any](a, b, c T, rest ...T) (T, error) {
	return ModuloSeq(numeric.Many(a, b, c, rest...))
}

// ModuloSeq folds the remainder left to right.
func ModuloSeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := checked(opCheckedModulo, "modulo", func(t *table[T]) func(a, b T) T { return t.mod })
	return foldErr("Modulo", seq, f, err)
}

// Negate returns -a.
func Negate[T any](a T) (T, error) {
	f, err := NegateFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("Negate", err)
	}
	return f(a), nil
}

// AbsoluteValue returns |a|.
func AbsoluteValue[T any](a T) (T, error) {
	f, err := AbsoluteValueFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("AbsoluteValue", err)
	}
	return f(a), nil
}

// Invert returns 1 / a.
func Invert[T any](a T) (T, error) {
	one, err := FromIntFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("Invert", err)
	}
	r, err := Divide(one(1), a)
	if err != nil {
		return r, numeric.Errorf[T]("Invert", unwrapOp(err))
	}
	return r, nil
}

// MultiplyAddFunc returns the fused a*b + c of T.
func MultiplyAddFunc[T any]() (func(a, b, c T) T, error) {
	return specialize.For[T](OpMultiplyAdd, func() (func(a, b, c T) T, error) {
		var r Resolver[T]
		mul, add := r.Multiply(), r.Add()
		if err := r.Err(); err != nil {
			return nil, err
		}
		return func(a, b, c T) T { return add(mul(a, b), c) }, nil
	})
}

// MultiplyAdd returns a*b + c.
func MultiplyAdd[T any](a, b, c T) (T, error) {
	f, err := MultiplyAddFunc[T]()
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T]("MultiplyAdd", err)
	}
	return f(a, b, c), nil
}

// PowerFunc returns the specialized power of T.
//
// Types with a Pow method use it. Types convertible to float64 use
// math.Pow. Otherwise the exponent must be a non-negative integer and the
// power is computed by repeated multiplication; other exponents are
// ErrNotImplemented.
func PowerFunc[T any]() (func(a, b T) (T, error), error) {
	return specialize.For[T](OpPower, buildPower[T])
}

func buildPower[T any]() (func(a, b T) (T, error), error) {
	t := capabilities[T]()
	if pow := t.pow; pow != nil {
		return func(a, b T) (T, error) { return pow(a, b), nil }, nil
	}
	if t.floatPath() {
		toFloat, fromFloat := t.toFloat, t.fromFloat
		return func(a, b T) (T, error) {
			return fromFloat(math.Pow(toFloat(a), toFloat(b))), nil
		}, nil
	}
	if t.mul == nil || t.add == nil || t.cmp == nil || t.isInteger == nil || !t.hasOne {
		return nil, numeric.Capability[T]("power")
	}
	mul, add, cmp, isInteger := t.mul, t.add, t.cmp, t.isInteger
	zero, one := t.zero, t.one
	return func(a, b T) (T, error) {
		if !isInteger(b) || cmp(b, zero) < 0 {
			return zero, fmt.Errorf("%w: power with a negative or fractional exponent on %s",
				numeric.ErrNotImplemented, numeric.TypeName[T]())
		}
		result := one
		for i := zero; cmp(i, b) < 0; i = add(i, one) {
			result = mul(result, a)
		}
		return result, nil
	}, nil
}

// Power returns a raised to b.
func Power[T any](a, b T) (T, error) {
	return PowerSeq(numeric.Values(a, b))
}

// PowerMany returns ((a^b)^c)^rest...
func PowerMany[T any](a, b, c T, rest ...T) (T, error) {
	return PowerSeq(numeric.Many(a, b, c, rest...))
}

// PowerSeq raises the first element to every following element in turn.
func PowerSeq[T any](seq iter.Seq[T]) (T, error) {
	f, err := PowerFunc[T]()
	return foldErr("Power", seq, f, err)
}

// SquareRootFunc returns the specialized square root of T.
func SquareRootFunc[T any]() (func(a T) (T, error), error) {
	return specialize.For[T](OpSquareRoot, func() (func(a T) (T, error), error) {
		t := capabilities[T]()
		if t.sqrt == nil {
			return nil, fmt.Errorf("%w: square root of %s", numeric.ErrNotImplemented, numeric.TypeName[T]())
		}
		if t.cmp == nil || !t.hasZero {
			return nil, numeric.Capability[T]("comparison")
		}
		sqrt, cmp, zero := t.sqrt, t.cmp, t.zero
		return func(a T) (T, error) {
			if cmp(a, zero) < 0 {
				return zero, fmt.Errorf("%w: square root of a negative value", numeric.ErrDomain)
			}
			return sqrt(a), nil
		}, nil
	})
}

// SquareRoot returns the square root of a. Negative input is ErrDomain.
func SquareRoot[T any](a T) (T, error) {
	f, err := SquareRootFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("SquareRoot", err)
	}
	r, err := f(a)
	return r, numeric.Errorf[T]("SquareRoot", err)
}

// RootFunc returns the specialized n-th root of T.
func RootFunc[T any]() (func(a, n T) (T, error), error) {
	return specialize.For[T](OpRoot, func() (func(a, n T) (T, error), error) {
		t := capabilities[T]()
		if t.equal == nil || t.cmp == nil || !t.hasZero {
			return nil, numeric.Capability[T]("comparison")
		}
		equal, cmp, zero := t.equal, t.cmp, t.zero
		if t.floatPath() {
			toFloat, fromFloat := t.toFloat, t.fromFloat
			return func(a, n T) (T, error) {
				if equal(n, zero) {
					return zero, numeric.ErrDivideByZero
				}
				x, root := toFloat(a), toFloat(n)
				if x < 0 {
					if math.Mod(root, 2) != 1 && math.Mod(root, 2) != -1 {
						return zero, fmt.Errorf("%w: even or fractional root of a negative value", numeric.ErrDomain)
					}
					return fromFloat(-math.Pow(-x, 1/root)), nil
				}
				return fromFloat(math.Pow(x, 1/root)), nil
			}, nil
		}
		pow, err := PowerFunc[T]()
		if err != nil {
			return nil, err
		}
		if t.div == nil || !t.hasOne {
			return nil, numeric.Capability[T]("division")
		}
		div, one := t.div, t.one
		return func(a, n T) (T, error) {
			if equal(n, zero) {
				return zero, numeric.ErrDivideByZero
			}
			if cmp(a, zero) < 0 {
				return zero, fmt.Errorf("%w: root of a negative value", numeric.ErrDomain)
			}
			return pow(a, div(one, n))
		}, nil
	})
}

// Root returns the n-th root of a.
func Root[T any](a, n T) (T, error) {
	f, err := RootFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("Root", err)
	}
	r, err := f(a, n)
	return r, numeric.Errorf[T]("Root", err)
}

// unwrapOp strips an *OpError so the caller can rewrap with its own name.
func unwrapOp(err error) error {
	if opErr, ok := err.(*numeric.OpError); ok {
		return opErr.Err
	}
	return err
}
