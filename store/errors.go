package store

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	// ErrAlreadyBuilt indicates Build was called twice on a change handler
	// builder.
	ErrAlreadyBuilt = errors.New("store: change handler builder already built")

	// ErrNilStore indicates a nil store was passed to Build.
	ErrNilStore = errors.New("store: nil store")

	// ErrNilListener indicates Subscribe was called with a nil listener.
	ErrNilListener = errors.New("store: nil listener")
)

// ListenerError wraps a failure from a change listener, identifying which
// subscription's handler failed. Delivery to later subscribers stops; the
// committed state is unaffected.
type ListenerError struct {
	// SubscriptionID identifies the failing subscription.
	SubscriptionID string

	// Action is the name of the action whose change was being delivered.
	Action string

	// Err is the underlying listener error.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("store: listener %s failed for action %s: %v", e.SubscriptionID, e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}
