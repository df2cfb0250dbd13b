package operations

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

// Equal reports whether a == b.
func Equal[T any](a, b T) (bool, error) {
	f, err := EqualFunc[T]()
	if err != nil {
		return false, numeric.Errorf[T]("Equal", err)
	}
	return f(a, b), nil
}

// NotEqual reports whether a != b.
func NotEqual[T any](a, b T) (bool, error) {
	eq, err := Equal(a, b)
	return !eq && err == nil, err
}

// EqualSeq reports whether every element of seq equals the first.
func EqualSeq[T any](seq iter.Seq[T]) (bool, error) {
	f, err := EqualFunc[T]()
	if err != nil {
		return false, numeric.Errorf[T]("Equal", err)
	}
	if seq == nil {
		return false, numeric.Errorf[T]("Equal", numeric.ErrNilInput)
	}
	var first T
	seen, equal := false, true
	for v := range seq {
		if !seen {
			first, seen = v, true
			continue
		}
		if !f(first, v) {
			equal = false
			break
		}
	}
	if !seen {
		return false, numeric.Errorf[T]("Equal", numeric.ErrEmptyInput)
	}
	return equal, nil
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func Compare[T any](a, b T) (int, error) {
	f, err := CompareFunc[T]()
	if err != nil {
		return 0, numeric.Errorf[T]("Compare", err)
	}
	return f(a, b), nil
}

func compareWith[T any](name string, a, b T, accept func(c int) bool) (bool, error) {
	f, err := CompareFunc[T]()
	if err != nil {
		return false, numeric.Errorf[T](name, err)
	}
	return accept(f(a, b)), nil
}

// LessThan reports whether a < b.
func LessThan[T any](a, b T) (bool, error) {
	return compareWith("LessThan", a, b, func(c int) bool { return c < 0 })
}

// GreaterThan reports whether a > b.
func GreaterThan[T any](a, b T) (bool, error) {
	return compareWith("GreaterThan", a, b, func(c int) bool { return c > 0 })
}

// LessThanOrEqual reports whether a <= b.
func LessThanOrEqual[T any](a, b T) (bool, error) {
	return compareWith("LessThanOrEqual", a, b, func(c int) bool { return c <= 0 })
}

// GreaterThanOrEqual reports whether a >= b.
func GreaterThanOrEqual[T any](a, b T) (bool, error) {
	return compareWith("GreaterThanOrEqual", a, b, func(c int) bool { return c >= 0 })
}

// EqualWithLeniency reports whether |a - b| <= leniency. A negative
// leniency is ErrOutOfRange.
func EqualWithLeniency[T any](a, b, leniency T) (bool, error) {
	var r Resolver[T]
	sub, cmp := r.Subtract(), r.Compare()
	zero := r.Int(0)
	if err := r.Err(); err != nil {
		return false, numeric.Errorf[T]("EqualWithLeniency", err)
	}
	if cmp(leniency, zero) < 0 {
		return false, numeric.Errorf[T]("EqualWithLeniency",
			fmt.Errorf("%w: leniency must not be negative", numeric.ErrOutOfRange))
	}
	if cmp(a, b) < 0 {
		a, b = b, a
	}
	return cmp(sub(a, b), leniency) <= 0, nil
}

// IsInteger reports whether a has no fractional part.
func IsInteger[T any](a T) (bool, error) {
	f, err := IsIntegerFunc[T]()
	if err != nil {
		return false, numeric.Errorf[T]("IsInteger", err)
	}
	return f(a), nil
}

func parity[T any](name string, a T, want int64) (bool, error) {
	var r Resolver[T]
	isInteger, mod, abs, equal := r.IsInteger(), r.Modulo(), r.AbsoluteValue(), r.Equal()
	two, rem := r.Int(2), r.Int(want)
	if err := r.Err(); err != nil {
		return false, numeric.Errorf[T](name, err)
	}
	if !isInteger(a) {
		return false, nil
	}
	return equal(abs(mod(a, two)), rem), nil
}

// IsEven reports whether a is an even integer.
func IsEven[T any](a T) (bool, error) {
	return parity("IsEven", a, 0)
}

// IsOdd reports whether a is an odd integer.
func IsOdd[T any](a T) (bool, error) {
	return parity("IsOdd", a, 1)
}

func sign[T any](name string, a T, accept func(c int) bool) (bool, error) {
	var r Resolver[T]
	cmp, zero := r.Compare(), r.Int(0)
	if err := r.Err(); err != nil {
		return false, numeric.Errorf[T](name, err)
	}
	return accept(cmp(a, zero)), nil
}

// IsNegative reports whether a < 0.
func IsNegative[T any](a T) (bool, error) {
	return sign("IsNegative", a, func(c int) bool { return c < 0 })
}

// IsPositive reports whether a > 0.
func IsPositive[T any](a T) (bool, error) {
	return sign("IsPositive", a, func(c int) bool { return c > 0 })
}

// IsNonNegative reports whether a >= 0.
func IsNonNegative[T any](a T) (bool, error) {
	return sign("IsNonNegative", a, func(c int) bool { return c >= 0 })
}

func extreme[T any](name string, seq iter.Seq[T], keep func(c int) bool) (T, error) {
	f, err := CompareFunc[T]()
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T](name, err)
	}
	r, err := Reduce(seq, func(acc, next T) (T, error) {
		if keep(f(next, acc)) {
			return next, nil
		}
		return acc, nil
	})
	return r, numeric.Errorf[T](name, err)
}

// Maximum returns the larger of a and b, a on ties.
func Maximum[T any](a, b T) (T, error) {
	return MaximumSeq(numeric.Values(a, b))
}

// MaximumMany returns the largest argument.
func MaximumMany[T any](a, b, c T, rest ...T) (T, error) {
	return MaximumSeq(numeric.Many(a, b, c, rest...))
}

// MaximumSeq returns the largest element of seq, the earliest on ties.
func MaximumSeq[T any](seq iter.Seq[T]) (T, error) {
	return extreme("Maximum", seq, func(c int) bool { return c > 0 })
}

// Minimum returns the smaller of a and b, a on ties.
func Minimum[T any](a, b T) (T, error) {
	return MinimumSeq(numeric.Values(a, b))
}

// MinimumMany returns the smallest argument.
func MinimumMany[T any](a, b, c T, rest ...T) (T, error) {
	return MinimumSeq(numeric.Many(a, b, c, rest...))
}

// MinimumSeq returns the smallest element of seq, the earliest on ties.
func MinimumSeq[T any](seq iter.Seq[T]) (T, error) {
	return extreme("Minimum", seq, func(c int) bool { return c < 0 })
}

// Clamp limits a to [lo, hi]. lo > hi is ErrOutOfRange.
func Clamp[T any](a, lo, hi T) (T, error) {
	f, err := CompareFunc[T]()
	if err != nil {
		return a, numeric.Errorf[T]("Clamp", err)
	}
	if f(lo, hi) > 0 {
		return a, numeric.Errorf[T]("Clamp",
			fmt.Errorf("%w: minimum exceeds maximum", numeric.ErrOutOfRange))
	}
	switch {
	case f(a, lo) < 0:
		return lo, nil
	case f(a, hi) > 0:
		return hi, nil
	}
	return a, nil
}
