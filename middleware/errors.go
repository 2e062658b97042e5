package middleware

import (
	"errors"
	"fmt"
)

// Middleware errors.
var (
	// ErrPanic indicates a handler panicked and was recovered.
	ErrPanic = errors.New("middleware: handler panic")

	// ErrFiltered indicates an action was dropped by a filter predicate.
	// Filter middleware drops silently; this sentinel exists for filters
	// configured to report drops.
	ErrFiltered = errors.New("middleware: action filtered")
)

// PanicError carries a recovered panic value and the captured stack.
type PanicError struct {
	// Action is the name of the action being handled.
	Action string

	// Value is the recovered panic value.
	Value any

	// Stack is the goroutine stack captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("middleware: handler panic for %s: %v", e.Action, e.Value)
}

// Unwrap returns ErrPanic so callers can match with errors.Is.
func (e *PanicError) Unwrap() error {
	return ErrPanic
}
