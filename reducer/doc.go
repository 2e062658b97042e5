// Package reducer builds dispatch tables mapping action names to reducer
// functions.
//
// A Builder accumulates registrations and composes with other builders,
// including nested builders operating on a projected substate. Build freezes
// the table into a Reducer; the builder remains mutable but later additions
// never affect an already-built table.
package reducer
