// Package specialize memoizes specialized implementations of generic
// operations, one per (operation, concrete type) pair.
//
// A slot is created the first time a key is looked up and is resolved
// exactly once: the builder runs under a sync.Once and its result, callable
// or error, is published to every later caller. Slots live for the life of
// the process.
//
// Example Usage:
//
//	add, err := specialize.Resolve(specialize.Default, "Add",
//	    func() (func(int, int) int, error) {
//	        return func(a, b int) int { return a + b }, nil
//	    },
//	    reflect.TypeFor[int]())
package specialize
