package reducer

import (
	"errors"
	"fmt"
)

// Reducer errors.
var (
	// ErrPayloadType indicates a dispatched payload did not match the type
	// registered for the action name.
	ErrPayloadType = errors.New("reducer: payload type mismatch")
)

// PayloadTypeError reports a payload whose dynamic type does not match the
// type bound to the action name at registration.
type PayloadTypeError struct {
	// Action is the action name the reducer is registered under.
	Action string

	// Want is the registered payload type.
	Want string

	// Got is the dynamic type of the dispatched payload.
	Got string
}

// Error implements the error interface.
func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("reducer: action %q expects payload %s, got %s", e.Action, e.Want, e.Got)
}

// Unwrap returns ErrPayloadType so callers can match with errors.Is.
func (e *PayloadTypeError) Unwrap() error {
	return ErrPayloadType
}

// NestedError wraps a failure from a reducer composed onto a nested
// substate, identifying which field's substate failed to build.
type NestedError struct {
	// Field identifies the nested substate within the parent state.
	Field string

	// Err is the underlying reducer error.
	Err error
}

// Error implements the error interface.
func (e *NestedError) Error() string {
	return fmt.Sprintf("reducer: nested substate %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *NestedError) Unwrap() error {
	return e.Err
}
