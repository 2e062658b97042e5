package middleware

import (
	"time"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/logging"
)

// Logging records each action passing through the chain: name and duration
// at debug level, failures at error level. Drops by downstream middleware
// are indistinguishable from successful no-ops here; only errors are
// surfaced.
func Logging[S any](logger *logging.Logger) Middleware[S] {
	if logger == nil {
		logger = logging.Null
	}
	log := logger.WithComponent("dispatch")

	return func(api API[S]) func(next Handler) Handler {
		return func(next Handler) Handler {
			return func(act action.Action) error {
				start := time.Now()
				err := next(act)
				if err != nil {
					log.Error("action %s failed after %s: %v", act.Name, time.Since(start), err)
					return err
				}
				log.Debug("action %s handled in %s", act.Name, time.Since(start))
				return nil
			}
		}
	}
}
