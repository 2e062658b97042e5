package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/middleware"
	"github.com/dshills/fluxion/reducer"
)

// Reducer adapts a Lua global function into a reducer.
//
// The Lua function receives (state, action) as tables — the action table
// carries name and payload fields — and must return the next state table.
// Lua errors abort the dispatch; the store commits nothing.
func Reducer[S any](e *Engine, global string) reducer.Func[S] {
	return func(state S, act action.Action) (S, error) {
		var next S

		err := e.Do(func(L *lua.LState) error {
			fn := L.GetGlobal(global)
			if _, ok := fn.(*lua.LFunction); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownFunction, global)
			}

			stateLV, err := toLua(L, state)
			if err != nil {
				return err
			}
			actLV, err := actionToLua(L, act)
			if err != nil {
				return err
			}

			L.Push(fn)
			L.Push(stateLV)
			L.Push(actLV)
			if err := L.PCall(2, 1, nil); err != nil {
				return err
			}

			ret := L.Get(-1)
			L.Pop(1)

			next, err = decodeState[S](fromLua(ret))
			return err
		})
		if err != nil {
			return state, &FunctionError{Function: global, Err: err}
		}
		return next, nil
	}
}

// Middleware adapts a Lua global function into a middleware.
//
// The Lua function receives the action table and decides whether the action
// continues down the chain: returning false drops it, anything else
// (including nothing) forwards it. Lua errors abort the dispatch.
func Middleware[S any](e *Engine, global string) middleware.Middleware[S] {
	return func(api middleware.API[S]) func(next middleware.Handler) middleware.Handler {
		return func(next middleware.Handler) middleware.Handler {
			return func(act action.Action) error {
				forward := true

				err := e.Do(func(L *lua.LState) error {
					fn := L.GetGlobal(global)
					if _, ok := fn.(*lua.LFunction); !ok {
						return fmt.Errorf("%w: %s", ErrUnknownFunction, global)
					}

					actLV, err := actionToLua(L, act)
					if err != nil {
						return err
					}

					L.Push(fn)
					L.Push(actLV)
					if err := L.PCall(1, 1, nil); err != nil {
						return err
					}

					ret := L.Get(-1)
					L.Pop(1)

					if b, ok := ret.(lua.LBool); ok && !bool(b) {
						forward = false
					}
					return nil
				})
				if err != nil {
					return &FunctionError{Function: global, Err: err}
				}

				if !forward {
					return nil
				}
				return next(act)
			}
		}
	}
}

// actionToLua builds the Lua table handed to scripted reducers and
// middleware: {name=..., payload=..., source=...}.
func actionToLua(L *lua.LState, act action.Action) (lua.LValue, error) {
	t := L.NewTable()
	t.RawSetString("name", lua.LString(act.Name))

	payload, err := toLua(L, act.Payload)
	if err != nil {
		return lua.LNil, err
	}
	t.RawSetString("payload", payload)

	if act.Meta.Source != "" {
		t.RawSetString("source", lua.LString(act.Meta.Source))
	}
	return t, nil
}
