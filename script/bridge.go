package script

import (
	"encoding/json"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// toLua converts a Go value to a Lua value on the given state.
// Values outside the JSON-shaped set (maps, slices, scalars) are routed
// through their JSON encoding first, so struct states arrive in Lua as
// tables keyed by their JSON field names.
func toLua(L *lua.LState, v any) (lua.LValue, error) {
	switch val := v.(type) {
	case nil:
		return lua.LNil, nil
	case bool:
		return lua.LBool(val), nil
	case int:
		return lua.LNumber(val), nil
	case int64:
		return lua.LNumber(val), nil
	case float64:
		return lua.LNumber(val), nil
	case string:
		return lua.LString(val), nil
	case map[string]any:
		t := L.NewTable()
		for k, item := range val {
			lv, err := toLua(L, item)
			if err != nil {
				return lua.LNil, err
			}
			t.RawSetString(k, lv)
		}
		return t, nil
	case []any:
		t := L.NewTable()
		for i, item := range val {
			lv, err := toLua(L, item)
			if err != nil {
				return lua.LNil, err
			}
			t.RawSetInt(i+1, lv)
		}
		return t, nil
	default:
		generic, err := jsonShape(v)
		if err != nil {
			return lua.LNil, err
		}
		return toLua(L, generic)
	}
}

// jsonShape reduces an arbitrary Go value to the JSON-generic value set.
func jsonShape(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("script: encode %T: %w", v, err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("script: decode %T: %w", v, err)
	}
	return generic, nil
}

// fromLua converts a Lua value back to a Go value.
// Integral numbers come back as int64; tables become []any when their keys
// are a contiguous 1..n sequence and map[string]any otherwise.
func fromLua(lv lua.LValue) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return tableToGo(v)
	case *lua.LUserData:
		return v.Value
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a Go slice or map.
func tableToGo(t *lua.LTable) any {
	isArray := true
	maxN := 0
	count := 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) || int(kn) < 1 {
			isArray = false
			return
		}
		if int(kn) > maxN {
			maxN = int(kn)
		}
	})

	if isArray && count > 0 && maxN == count {
		out := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			out[i-1] = fromLua(t.RawGetInt(i))
		}
		return out
	}

	out := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		out[k.String()] = fromLua(v)
	})
	return out
}

// decodeState converts a value produced by fromLua into the store's state
// type through its JSON encoding.
func decodeState[S any](v any) (S, error) {
	var out S
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("script: encode result: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("script: decode result into %T: %w", out, err)
	}
	return out, nil
}
