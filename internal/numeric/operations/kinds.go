package operations

import (
	"cmp"
	"math"
	"reflect"
	"unsafe"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type floating interface {
	~float32 | ~float64
}

// as reinterprets v as T. T's underlying type must be N.
func as[T, N any](v N) T { return *(*T)(unsafe.Pointer(&v)) }

// of reads the underlying N of v. T's underlying type must be N.
func of[N, T any](v T) N { return *(*N)(unsafe.Pointer(&v)) }

// kindTable builds the operator table for types whose underlying type is a
// predeclared integer or floating-point type, named types included.
func kindTable[T any]() *table[T] {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		return intTable[T, int]()
	case reflect.Int8:
		return intTable[T, int8]()
	case reflect.Int16:
		return intTable[T, int16]()
	case reflect.Int32:
		return intTable[T, int32]()
	case reflect.Int64:
		return intTable[T, int64]()
	case reflect.Uint:
		return intTable[T, uint]()
	case reflect.Uint8:
		return intTable[T, uint8]()
	case reflect.Uint16:
		return intTable[T, uint16]()
	case reflect.Uint32:
		return intTable[T, uint32]()
	case reflect.Uint64:
		return intTable[T, uint64]()
	case reflect.Uintptr:
		return intTable[T, uintptr]()
	case reflect.Float32:
		return floatTable[T, float32]()
	case reflect.Float64:
		return floatTable[T, float64]()
	}
	return nil
}

func binaryOf[T, N any](f func(a, b N) N) func(a, b T) T {
	return func(a, b T) T { return as[T](f(of[N](a), of[N](b))) }
}

func unaryOf[T, N any](f func(a N) N) func(a T) T {
	return func(a T) T { return as[T](f(of[N](a))) }
}

func intTable[T any, N integer]() *table[T] {
	return &table[T]{
		source: "kind",
		add:    binaryOf[T](func(a, b N) N { return a + b }),
		sub:    binaryOf[T](func(a, b N) N { return a - b }),
		mul:    binaryOf[T](func(a, b N) N { return a * b }),
		div:    binaryOf[T](func(a, b N) N { return a / b }),
		mod:    binaryOf[T](func(a, b N) N { return a % b }),
		neg:    unaryOf[T](func(a N) N { return -a }),
		abs: unaryOf[T](func(a N) N {
			if a < 0 {
				return -a
			}
			return a
		}),
		sqrt:      unaryOf[T](func(a N) N { return N(math.Sqrt(float64(a))) }),
		cmp:       func(a, b T) int { return cmp.Compare(of[N](a), of[N](b)) },
		equal:     func(a, b T) bool { return of[N](a) == of[N](b) },
		isInteger: func(T) bool { return true },
		toFloat:   func(a T) float64 { return float64(of[N](a)) },
		fromInt:   func(v int64) T { return as[T](N(v)) },
		fromFloat: func(f float64) T { return as[T](N(f)) },
	}
}

func floatTable[T any, N floating]() *table[T] {
	return &table[T]{
		source: "kind",
		add:    binaryOf[T](func(a, b N) N { return a + b }),
		sub:    binaryOf[T](func(a, b N) N { return a - b }),
		mul:    binaryOf[T](func(a, b N) N { return a * b }),
		div:    binaryOf[T](func(a, b N) N { return a / b }),
		mod:    binaryOf[T](func(a, b N) N { return N(math.Mod(float64(a), float64(b))) }),
		neg:    unaryOf[T](func(a N) N { return -a }),
		abs:    unaryOf[T](func(a N) N { return N(math.Abs(float64(a))) }),
		sqrt:   unaryOf[T](func(a N) N { return N(math.Sqrt(float64(a))) }),
		cmp:    func(a, b T) int { return cmp.Compare(of[N](a), of[N](b)) },
		equal:  func(a, b T) bool { return of[N](a) == of[N](b) },
		isInteger: func(a T) bool {
			f := float64(of[N](a))
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		},
		toFloat:   func(a T) float64 { return float64(of[N](a)) },
		fromInt:   func(v int64) T { return as[T](N(v)) },
		fromFloat: func(f float64) T { return as[T](N(f)) },
	}
}
