// Package operations implements the generic arithmetic, comparison,
// conversion and sequence-reduction entry points of the numeric engine.
//
// Every entry point is generic over an unconstrained type parameter. The
// operators a type supports are discovered on first use and each composed
// operation is memoized in the specialization cache, so the cost of
// discovery is paid once per (operation, type).
//
// Supported types:
//   - Go numeric kinds and named types over them (int, uint8, float64, type Meters float64, ...)
//   - *big.Int, *big.Rat and *big.Float
//   - any type exposing operator methods (Add, Sub, Mul, Div, Cmp, ...)
//
// Features:
//   - Two-operand, fixed-arity and sequence forms of every binary operation
//   - Float64 fast paths for power, roots and logarithms
//   - Type-capability errors raised on first use, never at declaration
//
// Example Usage:
//
//	sum, err := operations.Add(2, 3)                  // 5
//	r, err := operations.Divide(big.NewRat(1, 3), big.NewRat(2, 1))
//	max, err := operations.MaximumSeq(numeric.Values(4.5, 9.25, 1.0))
package operations
