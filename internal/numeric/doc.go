// Package numeric is the shared foundation of the generic numeric engine.
//
// The engine computes over any Go numeric representation without requiring
// a declared interface. Operators are discovered per concrete type the first
// time an operation is needed and memoized for the life of the process.
//
// Sub-packages:
//   - specialize: the (operation, type) specialization cache
//   - operations: arithmetic, comparison, conversion, reduction
//   - utilities: per-type constant table and iterative pi
//   - trigonometry: Taylor-series and quadratic trigonometry
//   - advanced: primality, prime factorization, GCF/LCM
//   - statistics: descriptive statistics and 2D regression
//
// This package holds what they share: error kinds, sequence helpers and
// the stop predicates that bound every iterative algorithm.
//
// Example Usage:
//
//	sum, err := operations.AddSeq(numeric.Values(1.5, 2.5, 3.0))
//	if errors.Is(err, numeric.ErrEmptyInput) {
//	    // no data
//	}
package numeric
