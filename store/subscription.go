package store

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/fluxion/action"
)

// Change is the event published after each committed dispatch.
type Change[S any] struct {
	// Prev is the state immediately before the dispatch.
	Prev S

	// Next is the state after the reducer ran, now committed.
	Next S

	// Action is the dispatched action that produced the transition.
	Action action.Action
}

// Listener receives change events. A non-nil error interrupts delivery to
// later subscribers and surfaces from Dispatch; the committed state is
// unaffected.
type Listener[S any] func(change Change[S]) error

// Subscription is a handle to an active change listener registration.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// IsActive returns true until Cancel is called.
	IsActive() bool

	// Cancel permanently removes the subscription. After Cancel returns the
	// listener is never invoked again.
	Cancel()
}

// subscription is the internal implementation of Subscription.
type subscription[S any] struct {
	id        string
	listener  Listener[S]
	cancelled atomic.Bool
	remove    func(id string)
}

// ID returns the subscription ID.
func (s *subscription[S]) ID() string {
	return s.id
}

// IsActive returns true if the subscription has not been cancelled.
func (s *subscription[S]) IsActive() bool {
	return !s.cancelled.Load()
}

// Cancel permanently cancels the subscription.
func (s *subscription[S]) Cancel() {
	if s.cancelled.CompareAndSwap(false, true) && s.remove != nil {
		s.remove(s.id)
	}
}

// subscriptions is an ordered registry of change listeners.
// Listeners are notified in subscription order.
type subscriptions[S any] struct {
	mu      sync.RWMutex
	ordered []*subscription[S]
	byID    map[string]*subscription[S]
}

func newSubscriptions[S any]() *subscriptions[S] {
	return &subscriptions[S]{
		byID: make(map[string]*subscription[S]),
	}
}

func (r *subscriptions[S]) add(listener Listener[S]) *subscription[S] {
	sub := &subscription[S]{
		id:       uuid.NewString(),
		listener: listener,
		remove:   r.remove,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ordered = append(r.ordered, sub)
	r.byID[sub.id] = sub
	return sub
}

func (r *subscriptions[S]) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return
	}
	delete(r.byID, id)

	for i, s := range r.ordered {
		if s.id == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
}

func (r *subscriptions[S]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// publish delivers a change to all active subscriptions in order. The first
// listener error stops delivery and is returned wrapped with the
// subscription identity. Listener errors are not isolated between
// subscribers.
func (r *subscriptions[S]) publish(change Change[S]) error {
	r.mu.RLock()
	subs := make([]*subscription[S], len(r.ordered))
	copy(subs, r.ordered)
	r.mu.RUnlock()

	for _, sub := range subs {
		if !sub.IsActive() {
			continue
		}
		if err := sub.listener(change); err != nil {
			return &ListenerError{
				SubscriptionID: sub.id,
				Action:         change.Action.Name,
				Err:            err,
			}
		}
	}
	return nil
}
