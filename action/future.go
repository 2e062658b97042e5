package action

import (
	"context"
	"sync"
)

// Future is a single-assignment result slot attached to a dispatched action.
//
// A handler that produces a result for the dispatching caller resolves the
// future with Complete or Fail. Only the first resolution takes effect;
// later calls report ErrFutureCompleted. The store itself never resolves
// futures — an abandoned future simply never becomes done.
type Future struct {
	mu    sync.Mutex
	done  chan struct{}
	value any
	err   error
}

// NewFuture creates an unresolved future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete resolves the future with a value.
// Returns ErrFutureCompleted if the future was already resolved.
func (f *Future) Complete(value any) error {
	return f.resolve(value, nil)
}

// Fail resolves the future with an error.
// Returns ErrFutureCompleted if the future was already resolved.
func (f *Future) Fail(err error) error {
	return f.resolve(nil, err)
}

func (f *Future) resolve(value any, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.done:
		return ErrFutureCompleted
	default:
	}

	f.value = value
	f.err = err
	close(f.done)
	return nil
}

// Done returns a channel that is closed when the future is resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// IsDone returns true if the future has been resolved.
func (f *Future) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Value returns the resolved value and error without blocking.
// Returns ErrFuturePending if the future is not yet resolved.
func (f *Future) Value() (any, error) {
	if !f.IsDone() {
		return nil, ErrFuturePending
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Await blocks until the future is resolved or the context is cancelled.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await blocks until the future resolves and asserts its value to R.
// A resolved error, a cancelled context, or a value of the wrong type all
// surface as errors.
func Await[R any](ctx context.Context, f *Future) (R, error) {
	var zero R

	value, err := f.Await(ctx)
	if err != nil {
		return zero, err
	}

	result, ok := value.(R)
	if !ok {
		return zero, ErrFutureType
	}
	return result, nil
}
