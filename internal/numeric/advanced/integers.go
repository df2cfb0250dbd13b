package advanced

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
)

// integerOps bundles the operators the number-theory routines share.
type integerOps[T any] struct {
	add, mul, div, mod func(a, b T) T
	abs, neg           func(a T) T
	cmp                func(a, b T) int
	equal              func(a, b T) bool
	isInteger          func(a T) bool
	zero, one, two     T
}

func resolveIntegerOps[T any]() (*integerOps[T], error) {
	var r operations.Resolver[T]
	o := &integerOps[T]{
		add:       r.Add(),
		mul:       r.Multiply(),
		div:       r.Divide(),
		mod:       r.Modulo(),
		abs:       r.AbsoluteValue(),
		neg:       r.Negate(),
		cmp:       r.Compare(),
		equal:     r.Equal(),
		isInteger: r.IsInteger(),
		zero:      r.Int(0),
		one:       r.Int(1),
		two:       r.Int(2),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *integerOps[T]) divides(d, n T) bool {
	return o.equal(o.mod(n, d), o.zero)
}

// check rejects non-integral values, and zero when rejectZero is set.
func (o *integerOps[T]) check(v T, rejectZero bool) error {
	if !o.isInteger(v) {
		return fmt.Errorf("%w: %v is not an integer", numeric.ErrDomain, v)
	}
	if rejectZero && o.equal(v, o.zero) {
		return fmt.Errorf("%w: zero has no common factor", numeric.ErrDomain)
	}
	return nil
}

// validated passes seq through, stopping at the first element check
// rejects and recording the error in failed.
func validated[T any](seq iter.Seq[T], check func(T) error, failed *error) iter.Seq[T] {
	if seq == nil {
		return nil
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if err := check(v); err != nil {
				*failed = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
