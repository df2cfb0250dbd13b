package statistics

import (
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
)

type ops[T any] struct {
	add, sub, mul, div func(a, b T) T
	abs                func(a T) T
	cmp                func(a, b T) int
	fromInt            func(n int64) T
}

func resolveOps[T any]() (*ops[T], error) {
	var r operations.Resolver[T]
	o := &ops[T]{
		add: r.Add(),
		sub: r.Subtract(),
		mul: r.Multiply(),
		div: r.Divide(),
		abs: r.AbsoluteValue(),
		cmp: r.Compare(),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	fromInt, err := operations.FromIntFunc[T]()
	if err != nil {
		return nil, err
	}
	o.fromInt = fromInt
	return o, nil
}

// mean is the one-pass running sum and count.
func (o *ops[T]) mean(seq iter.Seq[T]) (T, int64, error) {
	var sum T
	if seq == nil {
		return sum, 0, numeric.ErrNilInput
	}
	var n int64
	for v := range seq {
		if n == 0 {
			sum = v
		} else {
			sum = o.add(sum, v)
		}
		n++
	}
	if n == 0 {
		return sum, 0, numeric.ErrEmptyInput
	}
	return o.div(sum, o.fromInt(n)), n, nil
}

// deviations averages f(v - mean) over a second pass of seq.
func (o *ops[T]) deviations(seq iter.Seq[T], f func(d T) T) (T, error) {
	mean, n, err := o.mean(seq)
	if err != nil {
		return mean, err
	}
	total := o.fromInt(0)
	for v := range seq {
		total = o.add(total, f(o.sub(v, mean)))
	}
	return o.div(total, o.fromInt(n)), nil
}

// Mean returns the arithmetic mean of seq.
func Mean[T any](seq iter.Seq[T]) (T, error) {
	o, err := resolveOps[T]()
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T]("Mean", err)
	}
	m, _, err := o.mean(seq)
	return m, numeric.Errorf[T]("Mean", err)
}

// Variance returns the population variance of seq.
func Variance[T any](seq iter.Seq[T]) (T, error) {
	v, err := variance(seq)
	return v, numeric.Errorf[T]("Variance", err)
}

func variance[T any](seq iter.Seq[T]) (T, error) {
	o, err := resolveOps[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return o.deviations(seq, func(d T) T { return o.mul(d, d) })
}

// StandardDeviation returns the square root of the population variance.
func StandardDeviation[T any](seq iter.Seq[T]) (T, error) {
	v, err := variance(seq)
	if err != nil {
		return v, numeric.Errorf[T]("StandardDeviation", err)
	}
	s, err := operations.SquareRoot(v)
	if err != nil {
		return s, numeric.Errorf[T]("StandardDeviation", err)
	}
	return s, nil
}

// MeanDeviation returns the mean absolute deviation from the mean.
func MeanDeviation[T any](seq iter.Seq[T]) (T, error) {
	o, err := resolveOps[T]()
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T]("MeanDeviation", err)
	}
	m, err := o.deviations(seq, o.abs)
	return m, numeric.Errorf[T]("MeanDeviation", err)
}

// Range returns the smallest and largest elements of seq.
func Range[T any](seq iter.Seq[T]) (lo, hi T, err error) {
	o, err := resolveOps[T]()
	if err != nil {
		return lo, hi, numeric.Errorf[T]("Range", err)
	}
	if seq == nil {
		return lo, hi, numeric.Errorf[T]("Range", numeric.ErrNilInput)
	}
	seen := false
	for v := range seq {
		switch {
		case !seen:
			lo, hi, seen = v, v, true
		case o.cmp(v, lo) < 0:
			lo = v
		case o.cmp(v, hi) > 0:
			hi = v
		}
	}
	if !seen {
		return lo, hi, numeric.Errorf[T]("Range", numeric.ErrEmptyInput)
	}
	return lo, hi, nil
}

// Mode is not implemented.
func Mode[T any](seq iter.Seq[T]) (T, error) {
	var zero T
	return zero, numeric.Errorf[T]("Mode", numeric.ErrNotImplemented)
}
