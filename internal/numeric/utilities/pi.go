package utilities

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
)

// ComputePi approximates π in T with the nested-fraction series
//
//	π = 2·(1 + 1/3·(1 + 2/5·(1 + 3/7·(...))))
//
// evaluating i levels deep on the i-th outer iteration. It stops when the
// estimate stops changing or stop reports true; a nil stop ends after the
// default budget. Exact types never stop changing, so they rely on stop.
// The result is never less than 3.
func ComputePi[T any](stop numeric.Stop[T]) (T, error) {
	stop = stop.OrDefault()

	var r operations.Resolver[T]
	add, mul, div := r.Add(), r.Multiply(), r.Divide()
	equal, cmp := r.Equal(), r.Compare()
	one, two, three := r.Int(1), r.Int(2), r.Int(3)
	fromInt, err := operations.FromIntFunc[T]()
	if err == nil {
		err = r.Err()
	}
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T]("ComputePi", err)
	}

	pi := one
	for i := int64(1); ; i++ {
		previous := pi
		pi = one
		for j := i; j >= 1; j-- {
			jt := fromInt(j)
			pi = add(one, mul(pi, div(jt, add(mul(two, jt), one))))
		}
		pi = mul(two, pi)
		if equal(pi, previous) || stop(pi) {
			break
		}
	}
	if cmp(pi, three) < 0 {
		pi = three
	}
	return pi, nil
}
