package action

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Action is a named request for a state transition.
//
// The Name identifies which reducer handles the action; the Payload carries
// the transition's input. Name is set at construction and must not be
// modified afterward. Result is an optional single-assignment slot a handler
// may resolve for the dispatching caller.
type Action struct {
	// Name identifies the action. It selects the reducer and routes change
	// events to name-keyed handlers.
	Name string

	// Payload is the typed input for the transition. Its dynamic type is
	// checked against the reducer registered under Name at dispatch time.
	Payload any

	// Result, if non-nil, is resolved by whichever handler chooses to
	// complete it. The store never resolves it implicitly.
	Result *Future

	// Meta carries per-action bookkeeping.
	Meta Metadata
}

// Metadata holds per-action bookkeeping fields.
type Metadata struct {
	// ID uniquely identifies this action instance.
	ID string

	// Time is when the action was constructed.
	Time time.Time

	// Source optionally names the component that created the action.
	Source string
}

// New creates an action with the given name and payload.
func New(name string, payload any) Action {
	return Action{
		Name:    name,
		Payload: payload,
		Meta: Metadata{
			ID:   generateID(),
			Time: time.Now(),
		},
	}
}

// WithResult returns a copy of the action carrying the given result future.
func (a Action) WithResult(f *Future) Action {
	a.Result = f
	return a
}

// WithSource returns a copy of the action with the metadata source set.
func (a Action) WithSource(source string) Action {
	a.Meta.Source = source
	return a
}

// DispatchFunc is the forwarding target of a dispatcher, normally a store's
// Dispatch method.
type DispatchFunc func(Action) error

// generateID generates a unique action ID.
func generateID() string {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(b)
}
