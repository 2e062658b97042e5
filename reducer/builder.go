package reducer

import (
	"reflect"

	"github.com/dshills/fluxion/action"
)

// Builder accumulates reducer registrations keyed by action name.
//
// Registering a name twice replaces the earlier reducer; the last write
// wins. A Builder and the Reducer it builds are distinct objects: additions
// after Build do not affect previously built tables.
type Builder[S any] struct {
	table map[string]Func[S]
}

// NewBuilder creates an empty reducer builder.
func NewBuilder[S any]() *Builder[S] {
	return &Builder[S]{
		table: make(map[string]Func[S]),
	}
}

// Add registers a reducer for an action name. Registering the same name
// again overwrites the previous reducer. Returns the builder for chaining.
func (b *Builder[S]) Add(name string, fn Func[S]) *Builder[S] {
	if fn == nil {
		// Tolerate and ignore; Build-time tables never hold nil entries.
		return b
	}
	b.table[name] = fn
	return b
}

// Combine merges another builder's registrations into this one.
// On name collision the other builder's reducer wins.
func (b *Builder[S]) Combine(other *Builder[S]) *Builder[S] {
	if other == nil {
		return b
	}
	for name, fn := range other.table {
		b.table[name] = fn
	}
	return b
}

// Has returns true if a reducer is registered for the action name.
func (b *Builder[S]) Has(name string) bool {
	_, ok := b.table[name]
	return ok
}

// Count returns the number of registered action names.
func (b *Builder[S]) Count() int {
	return len(b.table)
}

// Build freezes the current registrations into a Reducer.
// The builder remains usable; the returned table is a snapshot.
func (b *Builder[S]) Build() Reducer[S] {
	table := make(map[string]Func[S], len(b.table))
	for name, fn := range b.table {
		table[name] = fn
	}
	return Reducer[S]{table: table}
}

// Add registers a typed reducer, binding the action name to payload type P
// in a single call. Dispatching a payload of another type under the name
// fails with a PayloadTypeError naming the action and the expected type.
func Add[S, P any](b *Builder[S], name string, fn func(state S, payload P) (S, error)) *Builder[S] {
	if fn == nil {
		return b
	}

	want := reflect.TypeOf((*P)(nil)).Elem().String()
	b.Add(name, func(state S, act action.Action) (S, error) {
		payload, ok := act.Payload.(P)
		if !ok {
			return state, &PayloadTypeError{
				Action: name,
				Want:   want,
				Got:    typeName(act.Payload),
			}
		}
		return fn(state, payload)
	})
	return b
}

// CombineNested adapts a builder operating on a projected substate into
// registrations on the parent builder.
//
// The child's registrations are snapshotted at call time: get projects the
// parent state to the substate, the child reducer computes the next
// substate, and set rebuilds the parent from it. Child reducer failures are
// wrapped with the field identity. On name collision the child's reducer
// wins, matching Combine.
func CombineNested[S, C any](b *Builder[S], field string, child *Builder[C], get func(S) C, set func(S, C) S) *Builder[S] {
	if child == nil {
		return b
	}

	for name, fn := range child.table {
		b.Add(name, func(state S, act action.Action) (S, error) {
			sub, err := fn(get(state), act)
			if err != nil {
				return state, &NestedError{Field: field, Err: err}
			}
			return set(state, sub), nil
		})
	}
	return b
}

// typeName reports the dynamic type of a payload for error messages.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
