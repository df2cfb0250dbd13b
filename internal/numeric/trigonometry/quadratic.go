package trigonometry

import (
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/operations"
	"github.com/GriffinCanCode/numengine/internal/numeric/utilities"
)

// SineQuadratic approximates sin(x) with A·x·(π−x) on [0, π) and
// B·(x−π)·(2π−x) on [π, 2π), after reducing x into [0, 2π).
// A = 4/π² and B = −4/π².
func SineQuadratic[T any](x T) (T, error) {
	v, err := sineQuadratic(x)
	return v, numeric.Errorf[T]("SineQuadratic", err)
}

func sineQuadratic[T any](x T) (T, error) {
	var zero T
	a, err := resolveAngles[T]()
	if err != nil {
		return zero, err
	}
	coA, err := utilities.QuadraticSineA[T]()
	if err != nil {
		return zero, err
	}
	coB, err := utilities.QuadraticSineB[T]()
	if err != nil {
		return zero, err
	}
	mul, err := operations.MultiplyFunc[T]()
	if err != nil {
		return zero, err
	}

	x = a.period(x)
	if a.cmp(x, a.pi) < 0 {
		return mul(mul(coA, x), a.sub(a.pi, x)), nil
	}
	return mul(mul(coB, a.sub(x, a.pi)), a.sub(a.tau, x)), nil
}

// CosineQuadratic approximates cos(x) as SineQuadratic(x + π/2).
func CosineQuadratic[T any](x T) (T, error) {
	v, err := cosineQuadratic(x)
	return v, numeric.Errorf[T]("CosineQuadratic", err)
}

func cosineQuadratic[T any](x T) (T, error) {
	half, err := utilities.PiOver2[T]()
	if err != nil {
		return half, err
	}
	add, err := operations.AddFunc[T]()
	if err != nil {
		return half, err
	}
	return sineQuadratic(add(x, half))
}

// TangentQuadratic approximates tan(x).
func TangentQuadratic[T any](x T) (T, error) {
	return quadraticQuotient("TangentQuadratic", x, sineQuadratic[T], cosineQuadratic[T])
}

// CotangentQuadratic approximates cot(x).
func CotangentQuadratic[T any](x T) (T, error) {
	return quadraticQuotient("CotangentQuadratic", x, cosineQuadratic[T], sineQuadratic[T])
}

// CosecantQuadratic approximates csc(x).
func CosecantQuadratic[T any](x T) (T, error) {
	return quadraticReciprocal("CosecantQuadratic", x, sineQuadratic[T])
}

// SecantQuadratic approximates sec(x).
func SecantQuadratic[T any](x T) (T, error) {
	return quadraticReciprocal("SecantQuadratic", x, cosineQuadratic[T])
}

func quadraticQuotient[T any](name string, x T, num, den func(T) (T, error)) (T, error) {
	n, err := num(x)
	if err != nil {
		return n, numeric.Errorf[T](name, err)
	}
	d, err := den(x)
	if err != nil {
		return d, numeric.Errorf[T](name, err)
	}
	q, err := operations.Divide(n, d)
	return q, rename[T](name, err)
}

func quadraticReciprocal[T any](name string, x T, f func(T) (T, error)) (T, error) {
	v, err := f(x)
	if err != nil {
		return v, numeric.Errorf[T](name, err)
	}
	q, err := operations.Invert(v)
	return q, rename[T](name, err)
}
