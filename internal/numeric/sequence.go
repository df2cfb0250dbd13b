package numeric

import (
	"iter"
	"reflect"
	"slices"
)

// Values returns a push sequence over the given values.
func Values[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

// Pairs zips xs and ys into a point sequence. Extra elements of the longer
// slice are ignored.
func Pairs[T any](xs, ys []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		n := min(len(xs), len(ys))
		for i := 0; i < n; i++ {
			if !yield(xs[i], ys[i]) {
				return
			}
		}
	}
}

// Collect materializes seq. It returns ErrNilInput for a nil sequence and
// ErrEmptyInput when seq produced nothing.
func Collect[T any](seq iter.Seq[T]) ([]T, error) {
	if seq == nil {
		return nil, ErrNilInput
	}
	out := slices.Collect(seq)
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// TypeName returns the display name of T.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Many yields a, b, c and then rest, in order.
func Many[T any](a, b, c T, rest ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(a) || !yield(b) || !yield(c) {
			return
		}
		for _, v := range rest {
			if !yield(v) {
				return
			}
		}
	}
}
