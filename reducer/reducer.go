package reducer

import (
	"sort"

	"github.com/dshills/fluxion/action"
)

// Func computes the next state from the current state and an action.
// A non-nil error aborts the dispatch; the store commits nothing.
type Func[S any] func(state S, act action.Action) (S, error)

// Reducer is a frozen dispatch table built from a Builder.
//
// Reduce looks up the action name; an unregistered name is not an error —
// the state is returned unchanged.
type Reducer[S any] struct {
	table map[string]Func[S]
}

// Reduce applies the reducer registered under act.Name.
// Unregistered names are an identity passthrough.
func (r Reducer[S]) Reduce(state S, act action.Action) (S, error) {
	fn, ok := r.table[act.Name]
	if !ok {
		return state, nil
	}
	return fn(state, act)
}

// Has returns true if a reducer is registered for the action name.
func (r Reducer[S]) Has(name string) bool {
	_, ok := r.table[name]
	return ok
}

// Actions returns all registered action names, sorted.
func (r Reducer[S]) Actions() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered action names.
func (r Reducer[S]) Count() int {
	return len(r.table)
}
