package middleware

import (
	"runtime"

	"github.com/dshills/fluxion/action"
)

// Recovery converts panics from downstream handlers into PanicError values.
// The dispatch caller sees a synchronous error and the store commits
// nothing for the panicked action.
func Recovery[S any]() Middleware[S] {
	return func(api API[S]) func(next Handler) Handler {
		return func(next Handler) Handler {
			return func(act action.Action) (err error) {
				defer func() {
					if r := recover(); r != nil {
						stack := make([]byte, 4096)
						n := runtime.Stack(stack, false)
						err = &PanicError{
							Action: act.Name,
							Value:  r,
							Stack:  stack[:n],
						}
					}
				}()

				return next(act)
			}
		}
	}
}
