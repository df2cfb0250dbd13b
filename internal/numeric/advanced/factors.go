package advanced

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
)

func (o *integerOps[T]) gcf(a, b T) T {
	a, b = o.abs(a), o.abs(b)
	for !o.equal(b, o.zero) {
		a, b = b, o.mod(a, b)
	}
	return a
}

func (o *integerOps[T]) lcm(a, b T) T {
	return o.div(o.abs(o.mul(a, b)), o.gcf(a, b))
}

func fold[T any](name string, seq iter.Seq[T], combine func(o *integerOps[T], a, b T) T) (T, error) {
	var zero T
	o, err := resolveIntegerOps[T]()
	if err != nil {
		return zero, numeric.Errorf[T](name, err)
	}
	var failed error
	check := func(v T) error { return o.check(v, true) }
	r, err := operations.Reduce(validated(seq, check, &failed), func(acc, next T) (T, error) {
		return combine(o, acc, next), nil
	})
	if failed != nil {
		return zero, numeric.Errorf[T](name, failed)
	}
	if err != nil {
		return zero, numeric.Errorf[T](name, err)
	}
	return o.abs(r), nil
}

// GreatestCommonFactor returns the greatest common factor of a and b.
func GreatestCommonFactor[T any](a, b T) (T, error) {
	return GreatestCommonFactorSeq(numeric.Values(a, b))
}

// GreatestCommonFactorMany returns the greatest common factor of all arguments.
func GreatestCommonFactorMany[T any](a, b, c T, rest ...T) (T, error) {
	return GreatestCommonFactorSeq(numeric.Many(a, b, c, rest...))
}

// GreatestCommonFactorSeq folds Euclid's algorithm over seq. Every element
// must be a nonzero integer; the result is never negative.
func GreatestCommonFactorSeq[T any](seq iter.Seq[T]) (T, error) {
	return fold("GreatestCommonFactor", seq, (*integerOps[T]).gcf)
}

// LeastCommonMultiple returns the least common multiple of a and b.
func LeastCommonMultiple[T any](a, b T) (T, error) {
	return LeastCommonMultipleSeq(numeric.Values(a, b))
}

// LeastCommonMultipleMany returns the least common multiple of all arguments.
func LeastCommonMultipleMany[T any](a, b, c T, rest ...T) (T, error) {
	return LeastCommonMultipleSeq(numeric.Many(a, b, c, rest...))
}

// LeastCommonMultipleSeq folds lcm(a, b) = |a·b| / gcf(a, b) over seq.
// Every element must be a nonzero integer.
func LeastCommonMultipleSeq[T any](seq iter.Seq[T]) (T, error) {
	return fold("LeastCommonMultiple", seq, (*integerOps[T]).lcm)
}

// Factorial returns n! for a non-negative integer n.
func Factorial[T any](n T) (T, error) {
	o, err := resolveIntegerOps[T]()
	if err != nil {
		return n, numeric.Errorf[T]("Factorial", err)
	}
	if err := o.check(n, false); err != nil {
		return n, numeric.Errorf[T]("Factorial", err)
	}
	if o.cmp(n, o.zero) < 0 {
		return n, numeric.Errorf[T]("Factorial", fmt.Errorf("%w: factorial of a negative value", numeric.ErrDomain))
	}
	result := o.one
	for i := o.two; o.cmp(i, n) <= 0; i = o.add(i, o.one) {
		result = o.mul(result, i)
	}
	return result, nil
}
