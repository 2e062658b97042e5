package store

import "sync"

// ChangeHandlerBuilder registers change handlers keyed by action name and
// routes a store's change stream to them.
//
// One handler per name per builder; registering a name again replaces the
// earlier handler. Multiple builders may subscribe to the same store
// independently.
type ChangeHandlerBuilder[S any] struct {
	mu       sync.Mutex
	handlers map[string]Listener[S]
	sub      Subscription
}

// NewChangeHandlerBuilder creates an empty change handler builder.
func NewChangeHandlerBuilder[S any]() *ChangeHandlerBuilder[S] {
	return &ChangeHandlerBuilder[S]{
		handlers: make(map[string]Listener[S]),
	}
}

// OnAction registers a handler for changes produced by the named action.
// The last registration for a name wins. Returns the builder for chaining.
func (b *ChangeHandlerBuilder[S]) OnAction(name string, fn Listener[S]) *ChangeHandlerBuilder[S] {
	if fn == nil {
		return b
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = fn
	return b
}

// Build subscribes to the store's change stream and routes events by action
// name to the registered handlers. The handler table is frozen at Build;
// later OnAction calls do not affect an active subscription.
func (b *ChangeHandlerBuilder[S]) Build(st *Store[S]) (Subscription, error) {
	if st == nil {
		return nil, ErrNilStore
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sub != nil {
		return nil, ErrAlreadyBuilt
	}

	table := make(map[string]Listener[S], len(b.handlers))
	for name, fn := range b.handlers {
		table[name] = fn
	}

	sub, err := st.Subscribe(func(change Change[S]) error {
		fn, ok := table[change.Action.Name]
		if !ok {
			return nil
		}
		return fn(change)
	})
	if err != nil {
		return nil, err
	}

	b.sub = sub
	return sub, nil
}

// Dispose cancels the subscription. After Dispose returns, no handler is
// invoked again, even for dispatches issued immediately afterward. Dispose
// before Build, or called twice, is a no-op; the builder may be built again
// afterward.
func (b *ChangeHandlerBuilder[S]) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sub != nil {
		b.sub.Cancel()
		b.sub = nil
	}
}
