package middleware_test

import (
	"errors"
	"testing"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/middleware"
)

// fakeAPI is a minimal API implementation for chain tests.
type fakeAPI struct {
	state    int
	dispatch func(action.Action) error
}

func (f *fakeAPI) State() int { return f.state }

func (f *fakeAPI) Dispatch(act action.Action) error {
	if f.dispatch == nil {
		return nil
	}
	return f.dispatch(act)
}

// tap records chain traversal order under a label.
func tap(label string, order *[]string) middleware.Middleware[int] {
	return func(api middleware.API[int]) func(middleware.Handler) middleware.Handler {
		return func(next middleware.Handler) middleware.Handler {
			return func(act action.Action) error {
				*order = append(*order, label)
				return next(act)
			}
		}
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	terminal := func(act action.Action) error {
		order = append(order, "terminal")
		return nil
	}

	h := middleware.Chain[int](&fakeAPI{}, terminal, tap("a", &order), tap("b", &order))

	if err := h(action.New("x", nil)); err != nil {
		t.Fatalf("chain failed: %v", err)
	}

	want := []string{"a", "b", "terminal"}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestChainShortCircuit(t *testing.T) {
	terminalCalls := 0
	terminal := func(act action.Action) error {
		terminalCalls++
		return nil
	}

	drop := func(api middleware.API[int]) func(middleware.Handler) middleware.Handler {
		return func(next middleware.Handler) middleware.Handler {
			return func(act action.Action) error {
				// Never calls next: the action is dropped.
				return nil
			}
		}
	}

	var order []string
	h := middleware.Chain[int](&fakeAPI{}, terminal, tap("outer", &order), drop, tap("inner", &order))

	if err := h(action.New("x", nil)); err != nil {
		t.Fatalf("chain failed: %v", err)
	}
	if terminalCalls != 0 {
		t.Error("terminal handler should not run when a middleware drops the action")
	}
	if len(order) != 1 || order[0] != "outer" {
		t.Errorf("expected only outer middleware to run, got %v", order)
	}
}

func TestChainEmpty(t *testing.T) {
	called := false
	terminal := func(act action.Action) error {
		called = true
		return nil
	}

	h := middleware.Chain[int](&fakeAPI{}, terminal)

	if err := h(action.New("x", nil)); err != nil {
		t.Fatalf("chain failed: %v", err)
	}
	if !called {
		t.Error("terminal handler should run with an empty chain")
	}
}

func TestChainErrorPropagation(t *testing.T) {
	wantErr := errors.New("terminal failed")
	terminal := func(act action.Action) error {
		return wantErr
	}

	var order []string
	h := middleware.Chain[int](&fakeAPI{}, terminal, tap("a", &order))

	if err := h(action.New("x", nil)); !errors.Is(err, wantErr) {
		t.Errorf("expected terminal error, got %v", err)
	}
}

func TestThunkInterception(t *testing.T) {
	api := &fakeAPI{state: 42}
	terminalCalls := 0
	terminal := func(act action.Action) error {
		terminalCalls++
		return nil
	}

	h := middleware.Chain[int](api, terminal, middleware.Thunk[int]())

	var sawState int
	thunk := middleware.ThunkFunc[int](func(api middleware.API[int]) error {
		sawState = api.State()
		return nil
	})

	if err := h(action.New("effect", thunk)); err != nil {
		t.Fatalf("thunk dispatch failed: %v", err)
	}
	if terminalCalls != 0 {
		t.Error("thunk action should not reach the terminal handler")
	}
	if sawState != 42 {
		t.Errorf("thunk should receive the store API, saw state %d", sawState)
	}
}

func TestThunkPassThrough(t *testing.T) {
	terminalCalls := 0
	terminal := func(act action.Action) error {
		terminalCalls++
		return nil
	}

	h := middleware.Chain[int](&fakeAPI{}, terminal, middleware.Thunk[int]())

	if err := h(action.New("plain", 7)); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if terminalCalls != 1 {
		t.Errorf("non-thunk action should reach the terminal handler, got %d calls", terminalCalls)
	}
}

func TestThunkRedispatch(t *testing.T) {
	var redispatched []string
	api := &fakeAPI{
		dispatch: func(act action.Action) error {
			redispatched = append(redispatched, act.Name)
			return nil
		},
	}

	h := middleware.Chain[int](api, func(action.Action) error { return nil }, middleware.Thunk[int]())

	thunk := middleware.ThunkFunc[int](func(api middleware.API[int]) error {
		return api.Dispatch(action.New("follow.up", nil))
	})

	if err := h(action.New("effect", thunk)); err != nil {
		t.Fatalf("thunk dispatch failed: %v", err)
	}
	if len(redispatched) != 1 || redispatched[0] != "follow.up" {
		t.Errorf("expected thunk to re-inject follow.up, got %v", redispatched)
	}
}

func TestRecovery(t *testing.T) {
	terminal := func(act action.Action) error {
		panic("reducer exploded")
	}

	h := middleware.Chain[int](&fakeAPI{}, terminal, middleware.Recovery[int]())

	err := h(action.New("boom", nil))
	if !errors.Is(err, middleware.ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}

	var panicErr *middleware.PanicError
	if !errors.As(err, &panicErr) {
		t.Fatal("expected PanicError")
	}
	if panicErr.Action != "boom" {
		t.Errorf("expected action name boom, got %q", panicErr.Action)
	}
	if len(panicErr.Stack) == 0 {
		t.Error("expected captured stack")
	}
}

func TestFilter(t *testing.T) {
	terminalCalls := 0
	terminal := func(act action.Action) error {
		terminalCalls++
		return nil
	}

	h := middleware.Chain[int](&fakeAPI{}, terminal, middleware.Filter[int](func(act action.Action) bool {
		return act.Name != "blocked"
	}))

	if err := h(action.New("blocked", nil)); err != nil {
		t.Fatalf("filtered dispatch should be a silent drop, got %v", err)
	}
	if err := h(action.New("allowed", nil)); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if terminalCalls != 1 {
		t.Errorf("expected exactly one terminal call, got %d", terminalCalls)
	}
}

func TestFilterWithError(t *testing.T) {
	h := middleware.Chain[int](&fakeAPI{}, func(action.Action) error { return nil },
		middleware.FilterWithError[int](func(act action.Action) bool { return false }))

	if err := h(action.New("any", nil)); !errors.Is(err, middleware.ErrFiltered) {
		t.Errorf("expected ErrFiltered, got %v", err)
	}
}
