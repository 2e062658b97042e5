package middleware

import "github.com/dshills/fluxion/action"

// Filter drops actions failing the predicate. Dropped actions never reach
// the reducer and produce no change event; the drop is silent (nil error).
func Filter[S any](pred func(act action.Action) bool) Middleware[S] {
	return func(api API[S]) func(next Handler) Handler {
		return func(next Handler) Handler {
			return func(act action.Action) error {
				if pred != nil && !pred(act) {
					return nil
				}
				return next(act)
			}
		}
	}
}

// FilterWithError behaves like Filter but reports dropped actions with
// ErrFiltered instead of dropping silently.
func FilterWithError[S any](pred func(act action.Action) bool) Middleware[S] {
	return func(api API[S]) func(next Handler) Handler {
		return func(next Handler) Handler {
			return func(act action.Action) error {
				if pred != nil && !pred(act) {
					return ErrFiltered
				}
				return next(act)
			}
		}
	}
}
