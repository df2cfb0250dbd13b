package operations

import (
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

// Reduce seeds an accumulator with the first element of seq and combines
// every following element into it, left to right in production order.
// A nil seq is ErrNilInput; a seq producing nothing is ErrEmptyInput.
func Reduce[T any](seq iter.Seq[T], combine func(acc, next T) (T, error)) (T, error) {
	var acc T
	if seq == nil {
		return acc, numeric.ErrNilInput
	}
	first := true
	var err error
	for v := range seq {
		if first {
			acc, first = v, false
			continue
		}
		if acc, err = combine(acc, v); err != nil {
			var zero T
			return zero, err
		}
	}
	if first {
		return acc, numeric.ErrEmptyInput
	}
	return acc, nil
}

// Each visits every element of seq, stopping at the first error.
// It returns the number of elements visited.
func Each[T any](seq iter.Seq[T], visit func(v T) error) (int, error) {
	if seq == nil {
		return 0, numeric.ErrNilInput
	}
	n := 0
	for v := range seq {
		n++
		if err := visit(v); err != nil {
			return n, err
		}
	}
	return n, nil
}

func fold[T any](name string, seq iter.Seq[T], f func(a, b T) T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T](name, err)
	}
	r, err := Reduce(seq, func(acc, next T) (T, error) { return f(acc, next), nil })
	return r, numeric.Errorf[T](name, err)
}

func foldErr[T any](name string, seq iter.Seq[T], f func(a, b T) (T, error), err error) (T, error) {
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T](name, err)
	}
	r, err := Reduce(seq, f)
	return r, numeric.Errorf[T](name, err)
}
