package devtools

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/fluxion/action"
)

// PayloadDecoder reconstructs a typed payload from its recorded JSON form.
// Returning false skips the entry without error, for logs containing
// actions the replay target does not handle.
type PayloadDecoder func(name string, payload gjson.Result) (any, bool)

// Replay re-dispatches a recorded log, oldest first, into the given
// dispatch function.
//
// Without a decoder, payloads are replayed as gjson's generic decoding
// (float64, string, bool, map[string]any, []any) — suitable for stores
// whose reducers accept loosely typed payloads. Stores with typed reducers
// must supply a decoder. The first dispatch error stops the replay.
// Returns the number of dispatched actions.
func Replay(entries []string, dispatch action.DispatchFunc, decode PayloadDecoder) (int, error) {
	dispatched := 0
	for i, entry := range entries {
		name := gjson.Get(entry, "action.name").String()
		if name == "" {
			return dispatched, fmt.Errorf("devtools: replay entry %d: missing action name", i)
		}

		raw := gjson.Get(entry, "action.payload")

		var payload any
		if decode != nil {
			p, ok := decode(name, raw)
			if !ok {
				continue
			}
			payload = p
		} else {
			payload = raw.Value()
		}

		if err := dispatch(action.New(name, payload).WithSource("replay")); err != nil {
			return dispatched, fmt.Errorf("devtools: replay entry %d (%s): %w", i, name, err)
		}
		dispatched++
	}
	return dispatched, nil
}
