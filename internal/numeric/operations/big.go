package operations

import (
	"math"
	"math/big"
)

// sqrtPrec is the mantissa precision used for square roots of rationals.
const sqrtPrec = 256

// bigTable builds the operator table for math/big types.
func bigTable[T any]() *table[T] {
	var zero T
	switch any(zero).(type) {
	case *big.Int:
		return any(bigIntTable()).(*table[T])
	case *big.Rat:
		return any(bigRatTable()).(*table[T])
	case *big.Float:
		return any(bigFloatTable()).(*table[T])
	}
	return nil
}

func bigIntTable() *table[*big.Int] {
	return &table[*big.Int]{
		source:    "big",
		precise:   true,
		add:       func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
		sub:       func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
		mul:       func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
		div:       func(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) },
		mod:       func(a, b *big.Int) *big.Int { return new(big.Int).Rem(a, b) },
		neg:       func(a *big.Int) *big.Int { return new(big.Int).Neg(a) },
		abs:       func(a *big.Int) *big.Int { return new(big.Int).Abs(a) },
		sqrt:      func(a *big.Int) *big.Int { return new(big.Int).Sqrt(a) },
		cmp:       func(a, b *big.Int) int { return a.Cmp(b) },
		isInteger: func(*big.Int) bool { return true },
		toFloat: func(a *big.Int) float64 {
			f, _ := new(big.Float).SetInt(a).Float64()
			return f
		},
		fromInt: big.NewInt,
		fromFloat: func(f float64) *big.Int {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return new(big.Int)
			}
			i, _ := big.NewFloat(f).Int(nil)
			return i
		},
	}
}

func bigRatTable() *table[*big.Rat] {
	return &table[*big.Rat]{
		source:  "big",
		precise: true,
		add:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
		sub:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) },
		mul:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
		div:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) },
		mod: func(a, b *big.Rat) *big.Rat {
			q := new(big.Rat).Quo(a, b)
			t := new(big.Int).Quo(q.Num(), q.Denom())
			return new(big.Rat).Sub(a, new(big.Rat).Mul(b, new(big.Rat).SetInt(t)))
		},
		neg: func(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) },
		abs: func(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) },
		sqrt: func(a *big.Rat) *big.Rat {
			f := new(big.Float).SetPrec(sqrtPrec).SetRat(a)
			r, _ := f.Sqrt(f).Rat(nil)
			return r
		},
		cmp:       func(a, b *big.Rat) int { return a.Cmp(b) },
		isInteger: func(a *big.Rat) bool { return a.IsInt() },
		toFloat: func(a *big.Rat) float64 {
			f, _ := a.Float64()
			return f
		},
		fromInt: func(v int64) *big.Rat { return new(big.Rat).SetInt64(v) },
		fromFloat: func(f float64) *big.Rat {
			if r := new(big.Rat).SetFloat64(f); r != nil {
				return r
			}
			return new(big.Rat)
		},
	}
}

func bigFloatTable() *table[*big.Float] {
	return &table[*big.Float]{
		source:  "big",
		precise: true,
		add:     func(a, b *big.Float) *big.Float { return new(big.Float).Add(a, b) },
		sub:     func(a, b *big.Float) *big.Float { return new(big.Float).Sub(a, b) },
		mul:     func(a, b *big.Float) *big.Float { return new(big.Float).Mul(a, b) },
		div:     func(a, b *big.Float) *big.Float { return new(big.Float).Quo(a, b) },
		mod: func(a, b *big.Float) *big.Float {
			q := new(big.Float).Quo(a, b)
			t, _ := q.Int(nil)
			return new(big.Float).Sub(a, new(big.Float).Mul(b, new(big.Float).SetInt(t)))
		},
		neg:       func(a *big.Float) *big.Float { return new(big.Float).Neg(a) },
		abs:       func(a *big.Float) *big.Float { return new(big.Float).Abs(a) },
		sqrt:      func(a *big.Float) *big.Float { return new(big.Float).Sqrt(a) },
		cmp:       func(a, b *big.Float) int { return a.Cmp(b) },
		isInteger: func(a *big.Float) bool { return a.IsInt() },
		toFloat: func(a *big.Float) float64 {
			f, _ := a.Float64()
			return f
		},
		fromInt: func(v int64) *big.Float { return new(big.Float).SetInt64(v) },
		fromFloat: func(f float64) *big.Float {
			if math.IsNaN(f) {
				return new(big.Float)
			}
			return big.NewFloat(f)
		},
	}
}
