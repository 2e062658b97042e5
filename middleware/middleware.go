// Package middleware provides interceptors wrapping the path from dispatch
// to reducer invocation.
//
// A middleware receives the store's capability API and returns a transform
// from one action handler to another. Middlewares compose outermost-first:
// the first middleware registered sees a dispatched action first and must
// call next to continue the chain. Not calling next drops the action — no
// reducer runs and no change event is published.
package middleware

import "github.com/dshills/fluxion/action"

// Handler processes one action. The terminal handler of a chain invokes the
// store's reducer table and commits the result.
type Handler func(act action.Action) error

// API is the store capability exposed to middleware: reading current state
// and re-injecting actions into the full dispatch pipeline.
type API[S any] interface {
	// State returns the current committed state.
	State() S

	// Dispatch re-injects an action at the head of the middleware chain.
	Dispatch(act action.Action) error
}

// Middleware wraps an action handler. The outer function receives the store
// API once at wiring time; the returned transform is applied to the next
// handler in the chain.
type Middleware[S any] func(api API[S]) func(next Handler) Handler

// Chain composes middlewares around a terminal handler in registration
// order: mws[0] is outermost and handles a dispatched action first.
func Chain[S any](api API[S], terminal Handler, mws ...Middleware[S]) Handler {
	h := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		h = mws[i](api)(h)
	}
	return h
}
