package action

import "sync"

// Dispatcher is a typed, callable handle bound to one action name.
//
// Each invocation constructs an Action carrying a payload of type P and
// makes exactly one synchronous call into the bound dispatch function.
// Prefer constructing dispatchers already bound (see store.DispatcherFor);
// the two-phase NewDispatcher/Bind path exists for store reconfiguration,
// where rebinding replaces the previous target.
type Dispatcher[P any] struct {
	name string

	mu      sync.RWMutex
	forward DispatchFunc
}

// NewDispatcher creates an unbound dispatcher for the given action name.
// The dispatcher must be bound with Bind before it is invoked.
func NewDispatcher[P any](name string) *Dispatcher[P] {
	return &Dispatcher[P]{name: name}
}

// NewBoundDispatcher creates a dispatcher already bound to a dispatch
// function.
func NewBoundDispatcher[P any](name string, fn DispatchFunc) *Dispatcher[P] {
	return &Dispatcher[P]{name: name, forward: fn}
}

// Name returns the action name this dispatcher constructs.
func (d *Dispatcher[P]) Name() string {
	return d.name
}

// Bind sets the forwarding target. It may be called again during store
// reconfiguration; only the most recent binding is active.
func (d *Dispatcher[P]) Bind(fn DispatchFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.forward = fn
}

// IsBound returns true if a forwarding target has been set.
func (d *Dispatcher[P]) IsBound() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.forward != nil
}

// Dispatch constructs an action with a fresh result future and forwards it.
// The returned future is resolved only if some handler explicitly resolves
// it. Returns ErrUnbound if Bind has not been called.
func (d *Dispatcher[P]) Dispatch(payload P) (*Future, error) {
	return d.DispatchWith(payload, NewFuture())
}

// DispatchWith forwards an action carrying a caller-supplied result future.
// The same future is returned for the caller to await.
func (d *Dispatcher[P]) DispatchWith(payload P, result *Future) (*Future, error) {
	d.mu.RLock()
	forward := d.forward
	d.mu.RUnlock()

	if forward == nil {
		return nil, ErrUnbound
	}

	act := New(d.name, payload).WithResult(result)
	if err := forward(act); err != nil {
		return result, err
	}
	return result, nil
}
