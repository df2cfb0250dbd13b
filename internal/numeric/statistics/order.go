package statistics

import (
	"fmt"
	"iter"
	"slices"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

// sorted materializes seq and sorts it with compare, or with the type's
// own ordering when compare is nil.
func sorted[T any](o *ops[T], seq iter.Seq[T], compare func(a, b T) int) ([]T, error) {
	values, err := numeric.Collect(seq)
	if err != nil {
		return nil, err
	}
	if compare == nil {
		compare = o.cmp
	}
	slices.SortStableFunc(values, compare)
	return values, nil
}

func (o *ops[T]) midpoint(a, b T) T {
	return o.div(o.add(a, b), o.fromInt(2))
}

// Median returns the middle element of seq, or the mean of the two middle
// elements for an even count. compare orders the elements; nil uses the
// type's ordering.
func Median[T any](seq iter.Seq[T], compare func(a, b T) int) (T, error) {
	var zero T
	o, err := resolveOps[T]()
	if err != nil {
		return zero, numeric.Errorf[T]("Median", err)
	}
	values, err := sorted(o, seq, compare)
	if err != nil {
		return zero, numeric.Errorf[T]("Median", err)
	}
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], nil
	}
	return o.midpoint(values[mid-1], values[mid]), nil
}

// Quantiles returns quantiles+1 cut points of seq. The first and last are
// the minimum and maximum. Interior point k sits at position
// len·k/(quantiles+1) of the sorted data: an integral position takes that
// element, otherwise the element is averaged with its successor.
func Quantiles[T any](seq iter.Seq[T], quantiles int) ([]T, error) {
	if quantiles < 1 {
		return nil, numeric.Errorf[T]("Quantiles", fmt.Errorf("%w: quantiles must be at least 1, got %d", numeric.ErrOutOfRange, quantiles))
	}
	o, err := resolveOps[T]()
	if err != nil {
		return nil, numeric.Errorf[T]("Quantiles", err)
	}
	values, err := sorted(o, seq, nil)
	if err != nil {
		return nil, numeric.Errorf[T]("Quantiles", err)
	}

	n := len(values)
	out := make([]T, quantiles+1)
	out[0], out[quantiles] = values[0], values[n-1]
	for k := 1; k < quantiles; k++ {
		scaled := n * k
		i := scaled / (quantiles + 1)
		if scaled%(quantiles+1) == 0 {
			out[k] = values[i]
			continue
		}
		if i+1 >= n {
			return nil, numeric.Errorf[T]("Quantiles", fmt.Errorf("%w: quantile %d falls past the last element", numeric.ErrDomain, k))
		}
		out[k] = o.midpoint(values[i], values[i+1])
	}
	return out, nil
}
