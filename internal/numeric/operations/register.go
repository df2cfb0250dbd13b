package operations

import (
	"reflect"
	"sync"
)

var constructors sync.Map // reflect.Type -> *constructor

type constructor struct {
	mu        sync.Mutex
	fromInt   any
	fromFloat any
}

func constructorFor(t reflect.Type) *constructor {
	v, _ := constructors.LoadOrStore(t, &constructor{})
	return v.(*constructor)
}

// RegisterFromInt64 supplies the integer constructor of T for types that
// cannot carry a FromInt64 method, such as types from other modules.
// It must be called before T is first used by the engine; later calls
// do not affect operators that were already discovered.
func RegisterFromInt64[T any](fn func(int64) T) {
	c := constructorFor(reflect.TypeFor[T]())
	c.mu.Lock()
	c.fromInt = fn
	c.mu.Unlock()
}

// RegisterFromFloat64 supplies the float64 constructor of T.
// The same ordering rule as RegisterFromInt64 applies.
func RegisterFromFloat64[T any](fn func(float64) T) {
	c := constructorFor(reflect.TypeFor[T]())
	c.mu.Lock()
	c.fromFloat = fn
	c.mu.Unlock()
}

func applyRegistered[T any](t *table[T]) {
	v, ok := constructors.Load(reflect.TypeFor[T]())
	if !ok {
		return
	}
	c := v.(*constructor)
	c.mu.Lock()
	defer c.mu.Unlock()
	if fn, ok := c.fromInt.(func(int64) T); ok {
		t.fromInt = fn
	}
	if fn, ok := c.fromFloat.(func(float64) T); ok {
		t.fromFloat = fn
	}
}
