package operations

import (
	"math"
	"math/big"
	"reflect"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

// ConvertFunc returns the specialized conversion from A to B.
//
// Conversions are tried in order: identity, Go conversion between numeric
// kinds, exact conversion between math/big types, integer kinds through
// B's int64 constructor, then through float64.
func ConvertFunc[A, B any]() (func(a A) B, error) {
	return specialize.For2[A, B](OpConvert, buildConvert[A, B])
}

// Convert converts a to B.
func Convert[A, B any](a A) (B, error) {
	f, err := ConvertFunc[A, B]()
	if err != nil {
		var zero B
		return zero, numeric.Errorf[B]("Convert", err)
	}
	return f(a), nil
}

func buildConvert[A, B any]() (func(a A) B, error) {
	from, to := reflect.TypeFor[A](), reflect.TypeFor[B]()
	if from == to {
		return func(a A) B { return any(a).(B) }, nil
	}
	if isKind(from) && isKind(to) {
		return func(a A) B { return reflect.ValueOf(a).Convert(to).Interface().(B) }, nil
	}
	if f := convertBig[A, B](); f != nil {
		return f, nil
	}
	src, dst := capabilities[A](), capabilities[B]()
	if isIntKind(from) && dst.fromInt != nil {
		fromInt := dst.fromInt
		return func(a A) B { return fromInt(reflect.ValueOf(a).Convert(int64Type).Int()) }, nil
	}
	if isUintKind(from) && dst.fromInt != nil && (dst.add != nil || dst.fromFloat != nil) {
		return fromUint[A](dst), nil
	}
	if src.toFloat != nil && dst.fromFloat != nil {
		toFloat, fromFloat := src.toFloat, dst.fromFloat
		return func(a A) B { return fromFloat(toFloat(a)) }, nil
	}
	if src.toFloat != nil && isKind(to) {
		toFloat := src.toFloat
		return func(a A) B { return reflect.ValueOf(toFloat(a)).Convert(to).Interface().(B) }, nil
	}
	return nil, numeric.Capability[B]("conversion from " + from.String())
}

var int64Type = reflect.TypeFor[int64]()

// fromUint builds B from an unsigned kind. Values above math.MaxInt64 do not
// fit the int64 constructor; they are rebuilt exactly from two halves when B
// can add, otherwise they go through float64.
func fromUint[A, B any](dst *table[B]) func(a A) B {
	fromInt, add, fromFloat := dst.fromInt, dst.add, dst.fromFloat
	return func(a A) B {
		u := reflect.ValueOf(a).Uint()
		if u <= math.MaxInt64 {
			return fromInt(int64(u))
		}
		if add == nil {
			return fromFloat(float64(u))
		}
		half := fromInt(int64(u >> 1))
		v := add(half, half)
		if u&1 == 1 {
			v = add(v, fromInt(1))
		}
		return v
	}
}

// convertBig handles conversions between math/big types that would lose
// precision through float64.
func convertBig[A, B any]() func(a A) B {
	var a A
	var b B
	switch any(a).(type) {
	case *big.Int:
		switch any(b).(type) {
		case *big.Rat:
			return func(a A) B { return any(new(big.Rat).SetInt(any(a).(*big.Int))).(B) }
		case *big.Float:
			return func(a A) B { return any(new(big.Float).SetInt(any(a).(*big.Int))).(B) }
		}
	case *big.Rat:
		if _, ok := any(b).(*big.Float); ok {
			return func(a A) B { return any(new(big.Float).SetRat(any(a).(*big.Rat))).(B) }
		}
	}
	if isIntKind(reflect.TypeFor[A]()) {
		switch any(b).(type) {
		case *big.Int, *big.Rat:
			fromInt := capabilities[B]().fromInt
			return func(a A) B { return fromInt(reflect.ValueOf(a).Int()) }
		}
	}
	if isUintKind(reflect.TypeFor[A]()) {
		switch any(b).(type) {
		case *big.Int:
			return func(a A) B { return any(new(big.Int).SetUint64(reflect.ValueOf(a).Uint())).(B) }
		case *big.Rat:
			return func(a A) B {
				return any(new(big.Rat).SetInt(new(big.Int).SetUint64(reflect.ValueOf(a).Uint()))).(B)
			}
		}
	}
	return nil
}

func isKind(t reflect.Type) bool {
	return isIntKind(t) || isUintKind(t) || t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

func isIntKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
