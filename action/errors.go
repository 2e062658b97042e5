package action

import "errors"

// Action errors.
var (
	// ErrUnbound indicates a dispatcher was invoked before Bind was called.
	ErrUnbound = errors.New("action: dispatcher not bound to a dispatch function")

	// ErrFutureCompleted indicates a Future was completed more than once.
	ErrFutureCompleted = errors.New("action: future already completed")

	// ErrFuturePending indicates a Future's value was read before completion.
	ErrFuturePending = errors.New("action: future not yet completed")

	// ErrFutureType indicates a typed Await received a value of another type.
	ErrFutureType = errors.New("action: future value has unexpected type")

	// ErrEmptyName indicates an action was constructed with an empty name.
	ErrEmptyName = errors.New("action: empty action name")
)
