package middleware

import "github.com/dshills/fluxion/action"

// ThunkFunc is a callback payload executed by the Thunk middleware instead
// of being forwarded to the reducer table. It receives the store API and may
// read state and dispatch further actions.
type ThunkFunc[S any] func(api API[S]) error

// Thunk intercepts actions whose payload is a ThunkFunc. The callback runs
// with the store API and next is never called, so no reducer runs and no
// change event is published for the intercepted action. The action's result
// future, if any, is left for the callback to resolve.
func Thunk[S any]() Middleware[S] {
	return func(api API[S]) func(next Handler) Handler {
		return func(next Handler) Handler {
			return func(act action.Action) error {
				if fn, ok := act.Payload.(ThunkFunc[S]); ok {
					return fn(api)
				}
				return next(act)
			}
		}
	}
}
