package operations

import (
	"math"
	"reflect"

	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

// Operator methods a type may expose to take part in the engine. They are
// discovered on the zero value of the type, so pointer receivers must
// tolerate a nil receiver for the constructor methods.
type (
	Adder[T any]      interface{ Add(T) T }
	Subtracter[T any] interface{ Sub(T) T }
	Multiplier[T any] interface{ Mul(T) T }
	Divider[T any]    interface{ Div(T) T }
	Modder[T any]     interface{ Mod(T) T }
	Negater[T any]    interface{ Neg() T }
	Absoluter[T any]  interface{ Abs() T }
	Comparer[T any]   interface{ Cmp(T) int }
	Equaler[T any]    interface{ Equal(T) bool }
	Sqrter[T any]     interface{ Sqrt() T }
	Powerer[T any]    interface{ Pow(T) T }

	Int64Constructor[T any]   interface{ FromInt64(int64) T }
	Float64Constructor[T any] interface{ FromFloat64(float64) T }

	Integerer interface{ IsInteger() bool }
	Float64er interface{ Float64() float64 }
	Floater   interface{ Float() float64 }
)

// table holds the primitive operators discovered for one type. A nil
// field means the type does not support that operator.
type table[T any] struct {
	source string

	// precise types must not be routed through float64 for power or roots.
	precise bool

	add, sub, mul, div, mod func(a, b T) T
	neg, abs, sqrt          func(a T) T
	pow                     func(a, b T) T
	cmp                     func(a, b T) int
	equal                   func(a, b T) bool
	isInteger               func(a T) bool
	toFloat                 func(a T) float64
	fromInt                 func(v int64) T
	fromFloat               func(f float64) T

	zero, one       T
	hasZero, hasOne bool
}

// capabilities returns the operator table of T, discovering it once.
func capabilities[T any]() *table[T] {
	t, _ := specialize.For[T](OpCapabilities, func() (*table[T], error) {
		return discover[T](), nil
	})
	return t
}

func discover[T any]() *table[T] {
	var t *table[T]
	if kt := kindTable[T](); kt != nil {
		t = kt
	} else if bt := bigTable[T](); bt != nil {
		t = bt
	} else {
		t = methodTable[T]()
	}
	applyRegistered(t)
	t.complete()
	return t
}

func methodTable[T any]() *table[T] {
	var zero T
	z := any(zero)
	t := &table[T]{source: "methods"}

	if _, ok := z.(Adder[T]); ok {
		t.add = func(a, b T) T { return any(a).(Adder[T]).Add(b) }
	}
	if _, ok := z.(Subtracter[T]); ok {
		t.sub = func(a, b T) T { return any(a).(Subtracter[T]).Sub(b) }
	}
	if _, ok := z.(Multiplier[T]); ok {
		t.mul = func(a, b T) T { return any(a).(Multiplier[T]).Mul(b) }
	}
	if _, ok := z.(Divider[T]); ok {
		t.div = func(a, b T) T { return any(a).(Divider[T]).Div(b) }
	}
	if _, ok := z.(Modder[T]); ok {
		t.mod = func(a, b T) T { return any(a).(Modder[T]).Mod(b) }
	}
	if _, ok := z.(Negater[T]); ok {
		t.neg = func(a T) T { return any(a).(Negater[T]).Neg() }
	}
	if _, ok := z.(Absoluter[T]); ok {
		t.abs = func(a T) T { return any(a).(Absoluter[T]).Abs() }
	}
	if _, ok := z.(Comparer[T]); ok {
		t.cmp = func(a, b T) int { return any(a).(Comparer[T]).Cmp(b) }
	}
	if _, ok := z.(Equaler[T]); ok {
		t.equal = func(a, b T) bool { return any(a).(Equaler[T]).Equal(b) }
	}
	if _, ok := z.(Sqrter[T]); ok {
		t.sqrt = func(a T) T { return any(a).(Sqrter[T]).Sqrt() }
	}
	if _, ok := z.(Powerer[T]); ok {
		t.pow = func(a, b T) T { return any(a).(Powerer[T]).Pow(b) }
	}
	if _, ok := z.(Integerer); ok {
		t.isInteger = func(a T) bool { return any(a).(Integerer).IsInteger() }
	}
	switch z.(type) {
	case Float64er:
		t.toFloat = func(a T) float64 { return any(a).(Float64er).Float64() }
	case Floater:
		t.toFloat = func(a T) float64 { return any(a).(Floater).Float() }
	}
	if c, ok := z.(Int64Constructor[T]); ok {
		t.fromInt = c.FromInt64
	}
	if c, ok := z.(Float64Constructor[T]); ok {
		t.fromFloat = c.FromFloat64
	}
	return t
}

// complete fills in operators that can be composed from the ones present.
func (t *table[T]) complete() {
	if t.fromInt != nil {
		t.zero, t.hasZero = t.fromInt(0), true
		t.one, t.hasOne = t.fromInt(1), true
	} else if k := reflect.TypeFor[T]().Kind(); k == reflect.Struct || k == reflect.Array {
		var zero T
		t.zero, t.hasZero = zero, true
	}
	if t.equal == nil && t.cmp != nil {
		cmp := t.cmp
		t.equal = func(a, b T) bool { return cmp(a, b) == 0 }
	}
	if t.neg == nil && t.sub != nil && t.hasZero {
		sub, zero := t.sub, t.zero
		t.neg = func(a T) T { return sub(zero, a) }
	}
	if t.abs == nil && t.neg != nil && t.cmp != nil && t.hasZero {
		neg, cmp, zero := t.neg, t.cmp, t.zero
		t.abs = func(a T) T {
			if cmp(a, zero) < 0 {
				return neg(a)
			}
			return a
		}
	}
	if t.isInteger == nil && t.mod != nil && t.equal != nil && t.hasOne {
		mod, equal, zero, one := t.mod, t.equal, t.zero, t.one
		t.isInteger = func(a T) bool { return equal(mod(a, one), zero) }
	}
	if t.sqrt == nil && !t.precise && t.toFloat != nil && t.fromFloat != nil {
		toFloat, fromFloat := t.toFloat, t.fromFloat
		t.sqrt = func(a T) T { return fromFloat(math.Sqrt(toFloat(a))) }
	}
}

// floatPath reports whether T can be computed through float64.
func (t *table[T]) floatPath() bool {
	return !t.precise && t.toFloat != nil && t.fromFloat != nil
}
