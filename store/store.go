package store

import (
	"sync"
	"time"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/logging"
	"github.com/dshills/fluxion/middleware"
	"github.com/dshills/fluxion/reducer"
)

// Store owns the current state, the frozen reducer table, and the
// middleware-wrapped dispatch entry point.
type Store[S any] struct {
	mu      sync.RWMutex
	state   S
	reducer reducer.Reducer[S]

	handler middleware.Handler
	subs    *subscriptions[S]
	metrics *Metrics
	logger  *logging.Logger
}

// New creates a store with the given initial state and reducer table.
func New[S any](initial S, red reducer.Reducer[S], opts ...Option[S]) *Store[S] {
	cfg := defaultOptions[S]()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Store[S]{
		state:   initial,
		reducer: red,
		subs:    newSubscriptions[S](),
		logger:  cfg.logger,
	}
	if cfg.metrics {
		s.metrics = NewMetrics()
	}

	s.handler = middleware.Chain[S](s, s.commit, cfg.middlewares...)
	return s
}

// State returns the current committed state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs an action through the middleware chain. The terminal step
// invokes the reducer table; on success the new state is committed and one
// Change is published to subscribers synchronously, in subscription order.
// Any error from middleware, reducer, or a listener propagates to the
// caller. Middleware and reducer errors leave the committed state
// unchanged; a listener error arrives after the commit. Actions with an
// empty name are rejected before entering the chain.
func (s *Store[S]) Dispatch(act action.Action) error {
	if act.Name == "" {
		return action.ErrEmptyName
	}
	start := time.Now()
	err := s.handler(act)
	if s.metrics != nil {
		s.metrics.RecordDispatch(act.Name, time.Since(start), err)
	}
	return err
}

// commit is the terminal handler of the middleware chain.
func (s *Store[S]) commit(act action.Action) error {
	s.mu.RLock()
	prev := s.state
	s.mu.RUnlock()

	next, err := s.reducer.Reduce(prev, act)
	if err != nil {
		return err
	}

	// The next state is fully computed before it is published; observers
	// never see a torn state. Every dispatch that reaches this point
	// publishes exactly one change, even when the value is unchanged.
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("committed %s", act.Name)

	return s.subs.publish(Change[S]{Prev: prev, Next: next, Action: act})
}

// Subscribe registers a change listener. Listeners run synchronously during
// Dispatch in subscription order.
func (s *Store[S]) Subscribe(listener Listener[S]) (Subscription, error) {
	if listener == nil {
		return nil, ErrNilListener
	}
	return s.subs.add(listener), nil
}

// SubscriberCount returns the number of active subscriptions.
func (s *Store[S]) SubscriberCount() int {
	return s.subs.count()
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (s *Store[S]) Metrics() *Metrics {
	return s.metrics
}

// Reducer returns the store's frozen reducer table.
func (s *Store[S]) Reducer() reducer.Reducer[S] {
	return s.reducer
}

// DispatcherFor creates a typed dispatcher for the given action name, bound
// to the store's dispatch entry point. This is the preferred construction
// path: the dispatcher is usable immediately, with no separate wiring step.
func DispatcherFor[P, S any](s *Store[S], name string) *action.Dispatcher[P] {
	return action.NewBoundDispatcher[P](name, s.Dispatch)
}
