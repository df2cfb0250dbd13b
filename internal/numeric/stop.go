package numeric

import "sync/atomic"

// Stop decides, given the current estimate of an iterative algorithm,
// whether to stop iterating. It is evaluated once per iteration and is
// the only way to end a series early.
type Stop[T any] func(current T) bool

// DefaultIterationBudget is the iteration count used when no Stop is given.
const DefaultIterationBudget = 100

var defaultBudget atomic.Int64

func init() {
	defaultBudget.Store(DefaultIterationBudget)
}

// SetDefaultBudget changes the iteration budget used by DefaultStop.
// Non-positive values restore DefaultIterationBudget. Constants already
// computed keep the value they were computed with.
func SetDefaultBudget(n int) {
	if n <= 0 {
		n = DefaultIterationBudget
	}
	defaultBudget.Store(int64(n))
}

// DefaultBudget returns the current default iteration budget.
func DefaultBudget() int {
	return int(defaultBudget.Load())
}

// StopAfter returns a Stop that ends iteration after n evaluations.
// The returned predicate is stateful; use a fresh one per computation.
func StopAfter[T any](n int) Stop[T] {
	count := 0
	return func(T) bool {
		count++
		return count >= n
	}
}

// DefaultStop returns a StopAfter bound to the default budget.
func DefaultStop[T any]() Stop[T] {
	return StopAfter[T](DefaultBudget())
}

// OrDefault returns s, or DefaultStop when s is nil.
func (s Stop[T]) OrDefault() Stop[T] {
	if s == nil {
		return DefaultStop[T]()
	}
	return s
}
