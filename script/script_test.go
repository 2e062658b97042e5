package script_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/reducer"
	"github.com/dshills/fluxion/script"
	"github.com/dshills/fluxion/store"
)

type counterState struct {
	Count int `json:"count"`
}

func TestEngineDoString(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	if err := e.DoString(`x = 1 + 1`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
}

func TestEngineDoStringSyntaxError(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	if err := e.DoString(`function broken(`); err == nil {
		t.Error("expected syntax error")
	}
}

func TestEngineClosed(t *testing.T) {
	e := script.NewEngine()
	e.Close()

	if !e.IsClosed() {
		t.Error("expected engine to report closed")
	}
	if err := e.DoString(`x = 1`); !errors.Is(err, script.ErrEngineClosed) {
		t.Errorf("expected ErrEngineClosed, got %v", err)
	}

	// Close is idempotent.
	e.Close()
}

func TestEngineLoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reducers.lua")
	code := []byte("function noop(state, action)\n  return state\nend\n")
	if err := os.WriteFile(path, code, 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	e := script.NewEngine()
	defer e.Close()

	if err := e.LoadFiles([]string{path}); err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
}

func TestEngineLoadFilesMissing(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	if err := e.LoadFiles([]string{filepath.Join(t.TempDir(), "absent.lua")}); err == nil {
		t.Error("expected error for missing script file")
	}
}

func TestLuaReducer(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	code := `
function increment(state, action)
  state.count = state.count + action.payload
  return state
end
`
	if err := e.DoString(code); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	fn := script.Reducer[counterState](e, "increment")

	next, err := fn(counterState{Count: 2}, action.New("counter.increment", 3))
	if err != nil {
		t.Fatalf("lua reducer failed: %v", err)
	}
	if next.Count != 5 {
		t.Errorf("expected count 5, got %d", next.Count)
	}
}

func TestLuaReducerUnknownFunction(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	fn := script.Reducer[counterState](e, "missing")

	prev := counterState{Count: 1}
	next, err := fn(prev, action.New("x", nil))
	if !errors.Is(err, script.ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
	if next != prev {
		t.Error("state should be unchanged on error")
	}

	var fnErr *script.FunctionError
	if !errors.As(err, &fnErr) || fnErr.Function != "missing" {
		t.Errorf("expected FunctionError naming missing, got %v", err)
	}
}

func TestLuaReducerRuntimeError(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	if err := e.DoString(`function explode(state, action) error("nope") end`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	fn := script.Reducer[counterState](e, "explode")

	prev := counterState{Count: 1}
	next, err := fn(prev, action.New("x", nil))
	if err == nil {
		t.Fatal("expected lua runtime error")
	}
	if next != prev {
		t.Error("state should be unchanged on error")
	}
}

func TestLuaReducerInStore(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	code := `
function increment(state, action)
  state.count = state.count + action.payload
  return state
end

function reset(state, action)
  state.count = 0
  return state
end
`
	if err := e.DoString(code); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	b := reducer.NewBuilder[counterState]()
	b.Add("counter.increment", script.Reducer[counterState](e, "increment"))
	b.Add("counter.reset", script.Reducer[counterState](e, "reset"))

	st := store.New(counterState{}, b.Build())

	if err := st.Dispatch(action.New("counter.increment", 4)); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if err := st.Dispatch(action.New("counter.increment", 1)); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if st.State().Count != 5 {
		t.Errorf("expected count 5, got %d", st.State().Count)
	}

	if err := st.Dispatch(action.New("counter.reset", nil)); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if st.State().Count != 0 {
		t.Errorf("expected count 0 after reset, got %d", st.State().Count)
	}
}

func TestLuaMiddleware(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	code := `
function block_resets(action)
  return action.name ~= "counter.reset"
end
`
	if err := e.DoString(code); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	b := reducer.NewBuilder[counterState]()
	reducer.Add(b, "counter.increment", func(s counterState, n int) (counterState, error) {
		s.Count += n
		return s, nil
	})
	reducer.Add(b, "counter.reset", func(s counterState, _ any) (counterState, error) {
		s.Count = 0
		return s, nil
	})

	st := store.New(counterState{Count: 1}, b.Build(),
		store.WithMiddleware(script.Middleware[counterState](e, "block_resets")))

	if err := st.Dispatch(action.New("counter.increment", 2)); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if err := st.Dispatch(action.New("counter.reset", nil)); err != nil {
		t.Fatalf("blocked dispatch should be a silent drop, got %v", err)
	}

	if st.State().Count != 3 {
		t.Errorf("reset should have been dropped, got count %d", st.State().Count)
	}
}

func TestLuaMiddlewareNonBooleanForwards(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	if err := e.DoString(`function observe(action) end`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	b := reducer.NewBuilder[counterState]()
	reducer.Add(b, "counter.increment", func(s counterState, n int) (counterState, error) {
		s.Count += n
		return s, nil
	})

	st := store.New(counterState{}, b.Build(),
		store.WithMiddleware(script.Middleware[counterState](e, "observe")))

	if err := st.Dispatch(action.New("counter.increment", 2)); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if st.State().Count != 2 {
		t.Errorf("nil-returning lua middleware should forward, got %d", st.State().Count)
	}
}

func TestLuaReducerComplexState(t *testing.T) {
	e := script.NewEngine()
	defer e.Close()

	code := `
function add_todo(state, action)
  state.todos = state.todos or {}
  table.insert(state.todos, { title = action.payload, done = false })
  return state
end
`
	if err := e.DoString(code); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}

	type todo struct {
		Title string `json:"title"`
		Done  bool   `json:"done"`
	}
	type todoState struct {
		Todos []todo `json:"todos"`
	}

	fn := script.Reducer[todoState](e, "add_todo")

	next, err := fn(todoState{}, action.New("todo.add", "write docs"))
	if err != nil {
		t.Fatalf("lua reducer failed: %v", err)
	}
	if len(next.Todos) != 1 || next.Todos[0].Title != "write docs" || next.Todos[0].Done {
		t.Errorf("unexpected todos: %+v", next.Todos)
	}
}
