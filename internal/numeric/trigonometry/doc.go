// Package trigonometry provides generic trigonometric functions.
//
// Two families are offered. The Taylor functions sum the alternating power
// series after reducing the angle into [-π, π] and stop once the sum stops
// changing or the caller's stop predicate fires. The Quadratic functions
// evaluate a two-piece parabola fitted to one period of sine; they are
// fast and accurate to within a few percent.
//
// Exact types such as *big.Rat never reach a fixed point, so callers
// should pass a stop predicate. A nil predicate falls back to the default
// iteration budget.
//
// Inverse and hyperbolic functions are declared but not implemented.
package trigonometry
