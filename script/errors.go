package script

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("script: engine is closed")

	// ErrUnknownFunction indicates a named global is not a Lua function.
	ErrUnknownFunction = errors.New("script: unknown function")
)

// FunctionError wraps a failure from a named Lua function.
type FunctionError struct {
	// Function is the Lua global that failed.
	Function string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FunctionError) Error() string {
	return fmt.Sprintf("script: function %q: %v", e.Function, e.Err)
}

// Unwrap returns the underlying error.
func (e *FunctionError) Unwrap() error {
	return e.Err
}
