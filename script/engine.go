package script

import (
	"fmt"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// call represents one Lua operation to execute on the worker goroutine.
type call struct {
	fn     func(L *lua.LState) error
	result chan error
}

// Engine owns a Lua state and serializes all operations on it through a
// single worker goroutine.
type Engine struct {
	L     *lua.LState
	queue chan *call
	done  chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
}

// NewEngine creates an engine and starts its worker goroutine.
// The caller must Close the engine to release the Lua state.
func NewEngine() *Engine {
	e := &Engine{
		L:     lua.NewState(),
		queue: make(chan *call, 64),
		done:  make(chan struct{}),
	}
	go e.run()
	return e
}

// run processes queued operations until the engine is closed.
// All LState access happens on this goroutine.
func (e *Engine) run() {
	defer e.L.Close()

	for {
		select {
		case <-e.done:
			e.drain()
			return
		case c := <-e.queue:
			c.result <- e.execute(c)
			close(c.result)
		}
	}
}

// execute runs a single operation with panic recovery.
func (e *Engine) execute(c *call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = fmt.Errorf("script: panic: %v", v)
			}
		}
	}()

	return c.fn(e.L)
}

// drain fails all remaining queued operations after close.
func (e *Engine) drain() {
	for {
		select {
		case c := <-e.queue:
			c.result <- ErrEngineClosed
			close(c.result)
		default:
			return
		}
	}
}

// Do runs fn on the engine's worker goroutine and returns its error.
// fn receives the engine's LState and must not retain it.
func (e *Engine) Do(fn func(L *lua.LState) error) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}

	c := &call{
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case e.queue <- c:
	case <-e.done:
		return ErrEngineClosed
	}

	select {
	case err := <-c.result:
		return err
	case <-e.done:
		return ErrEngineClosed
	}
}

// DoString compiles and runs Lua source, typically function definitions to
// be referenced later by Reducer or Middleware.
func (e *Engine) DoString(source string) error {
	return e.Do(func(L *lua.LState) error {
		return L.DoString(source)
	})
}

// DoFile compiles and runs a Lua file.
func (e *Engine) DoFile(path string) error {
	return e.Do(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// LoadFiles runs each Lua file in order, stopping at the first failure.
func (e *Engine) LoadFiles(paths []string) error {
	for _, path := range paths {
		if err := e.DoFile(path); err != nil {
			return fmt.Errorf("script: load %s: %w", path, err)
		}
	}
	return nil
}

// Close shuts the engine down. Queued operations fail with ErrEngineClosed
// and the Lua state is released. Close is idempotent.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		close(e.done)
	})
}

// IsClosed returns true after Close has been called.
func (e *Engine) IsClosed() bool {
	return e.closed.Load()
}
