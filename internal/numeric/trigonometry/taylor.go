package trigonometry

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
)

// series sums start ∓ x^(k+2)/(k+2)! ± ... where start is x^k/k!, for
// k = 1 (sine) or k = 0 (cosine).
func series[T any](name string, x T, k int64, stop numeric.Stop[T]) (T, error) {
	stop = stop.OrDefault()
	a, err := resolveAngles[T]()
	if err != nil {
		var zero T
		return zero, numeric.Errorf[T](name, err)
	}

	var r operations.Resolver[T]
	add, sub, mul, div := r.Add(), r.Subtract(), r.Multiply(), r.Divide()
	equal := r.Equal()
	one := r.Int(1)
	if err := r.Err(); err != nil {
		var zero T
		return zero, numeric.Errorf[T](name, err)
	}

	x = a.symmetric(x)
	x2 := mul(x, x)
	power := one
	if k == 1 {
		power = x
	}
	factorial := one
	n := r.Int(k)
	sum := power

	for negative := true; ; negative = !negative {
		power = mul(power, x2)
		n = add(n, one)
		factorial = mul(factorial, n)
		n = add(n, one)
		factorial = mul(factorial, n)
		if equal(factorial, a.zero) {
			break
		}
		term := div(power, factorial)
		next := add(sum, term)
		if negative {
			next = sub(sum, term)
		}
		if equal(next, sum) {
			break
		}
		sum = next
		if stop(sum) {
			break
		}
	}
	return sum, nil
}

// SineTaylor returns sin(x) from its Taylor series.
func SineTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return series("SineTaylor", x, 1, stop)
}

// CosineTaylor returns cos(x) from its Taylor series.
func CosineTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return series("CosineTaylor", x, 0, stop)
}

// TangentTaylor returns sin(x)/cos(x). stop is consulted by both series,
// so a counting predicate spreads its budget across them.
func TangentTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return quotient("TangentTaylor", x, stop, SineTaylor[T], CosineTaylor[T])
}

// CotangentTaylor returns cos(x)/sin(x).
func CotangentTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return quotient("CotangentTaylor", x, stop, CosineTaylor[T], SineTaylor[T])
}

// CosecantTaylor returns 1/sin(x).
func CosecantTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return reciprocal("CosecantTaylor", x, stop, SineTaylor[T])
}

// SecantTaylor returns 1/cos(x).
func SecantTaylor[T any](x T, stop numeric.Stop[T]) (T, error) {
	return reciprocal("SecantTaylor", x, stop, CosineTaylor[T])
}

type approximation[T any] func(x T, stop numeric.Stop[T]) (T, error)

func quotient[T any](name string, x T, stop numeric.Stop[T], num, den approximation[T]) (T, error) {
	n, err := num(x, stop)
	if err != nil {
		return n, err
	}
	d, err := den(x, stop)
	if err != nil {
		return d, err
	}
	q, err := operations.Divide(n, d)
	return q, rename[T](name, err)
}

func reciprocal[T any](name string, x T, stop numeric.Stop[T], f approximation[T]) (T, error) {
	v, err := f(x, stop)
	if err != nil {
		return v, err
	}
	q, err := operations.Invert(v)
	return q, rename[T](name, err)
}

func rename[T any](name string, err error) error {
	if opErr, ok := err.(*numeric.OpError); ok {
		return &numeric.OpError{Op: name, Type: opErr.Type, Err: opErr.Err}
	}
	return numeric.Errorf[T](name, err)
}
