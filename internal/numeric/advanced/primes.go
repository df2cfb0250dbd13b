package advanced

import (
	"fmt"
	"iter"

	"github.com/GriffinCanCode/numengine/internal/numeric"
)

// IsPrime reports whether value is a prime integer. Non-integers and
// values below two are not prime.
func IsPrime[T any](value T) (bool, error) {
	o, err := resolveIntegerOps[T]()
	if err != nil {
		return false, numeric.Errorf[T]("IsPrime", err)
	}
	if !o.isInteger(value) || o.cmp(value, o.two) < 0 {
		return false, nil
	}
	if o.equal(value, o.two) {
		return true, nil
	}
	if o.divides(o.two, value) {
		return false, nil
	}
	for c := o.add(o.two, o.one); o.cmp(c, o.div(value, c)) <= 0; c = o.add(c, o.two) {
		if o.divides(c, value) {
			return false, nil
		}
	}
	return true, nil
}

// FactorPrimes returns the prime factors of value in ascending order, with
// -1 first for negative values. 60 yields 2, 2, 3, 5. Zero and
// non-integers are ErrDomain.
//
// The returned sequence recomputes the factors each time it is ranged over.
func FactorPrimes[T any](value T) (iter.Seq[T], error) {
	o, err := resolveIntegerOps[T]()
	if err != nil {
		return nil, numeric.Errorf[T]("FactorPrimes", err)
	}
	if err := o.check(value, false); err != nil {
		return nil, numeric.Errorf[T]("FactorPrimes", err)
	}
	if o.equal(value, o.zero) {
		return nil, numeric.Errorf[T]("FactorPrimes", fmt.Errorf("%w: zero has no prime factorization", numeric.ErrDomain))
	}

	return func(yield func(T) bool) {
		n := value
		if o.cmp(n, o.zero) < 0 {
			if !yield(o.neg(o.one)) {
				return
			}
			n = o.abs(n)
		}
		for o.divides(o.two, n) {
			if !yield(o.two) {
				return
			}
			n = o.div(n, o.two)
		}
		for c := o.add(o.two, o.one); o.cmp(c, o.div(n, c)) <= 0; c = o.add(c, o.two) {
			for o.divides(c, n) {
				if !yield(c) {
					return
				}
				n = o.div(n, c)
			}
		}
		if o.cmp(n, o.two) > 0 {
			yield(n)
		}
	}, nil
}
