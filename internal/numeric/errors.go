package numeric

import (
	"errors"
	"fmt"
)

// Error kinds returned by the engine. Match with errors.Is.
var (
	// ErrNilInput is returned when a required sequence or argument is absent.
	ErrNilInput = errors.New("numeric: nil input")

	// ErrEmptyInput is returned when a sequence produced no elements.
	ErrEmptyInput = errors.New("numeric: empty input")

	// ErrOutOfRange is returned when a parameter violates a documented bound.
	ErrOutOfRange = errors.New("numeric: argument out of range")

	// ErrDomain is returned for mathematically undefined requests.
	ErrDomain = errors.New("numeric: domain error")

	// ErrDivideByZero is a domain error for a zero divisor.
	ErrDivideByZero = fmt.Errorf("%w: divide by zero", ErrDomain)

	// ErrTypeCapability is returned when a type lacks an operator that an
	// operation needs. It surfaces on first use of that operation.
	ErrTypeCapability = errors.New("numeric: type does not support operation")

	// ErrNotImplemented marks operations that are deliberately unfinished.
	// It is never a domain error.
	ErrNotImplemented = errors.New("numeric: not implemented")
)

// OpError records the failing operation and the concrete type it ran on.
type OpError struct {
	Op   string
	Type string
	Err  error
}

func (e *OpError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s[%s]: %v", e.Op, e.Type, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Errorf wraps err with the operation name and the type name of T.
// An err that is already an *OpError is returned unchanged so the
// innermost operation stays visible.
func Errorf[T any](op string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Type: TypeName[T](), Err: err}
}

// Capability builds a type-capability error naming the missing operator.
func Capability[T any](operator string) error {
	return fmt.Errorf("%w: %s has no %s", ErrTypeCapability, TypeName[T](), operator)
}
