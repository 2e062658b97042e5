// Package selector provides path-based reads over state snapshots.
//
// A Selector encodes a state value to JSON and evaluates a gjson path
// against it. Selectors are useful for change handlers that care about one
// field of a larger state tree, and for tooling that inspects recorded
// state without knowing its Go type.
package selector

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Selector evaluates one gjson path against state snapshots.
type Selector struct {
	path string
}

// New creates a selector for the given gjson path, e.g. "counter.count" or
// "todos.#".
func New(path string) Selector {
	return Selector{path: path}
}

// Path returns the selector's path.
func (s Selector) Path() string {
	return s.path
}

// Eval encodes the state to JSON and evaluates the path against it.
// The zero gjson.Result (not Exists) is returned for absent paths.
func (s Selector) Eval(state any) (gjson.Result, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("selector: encode state: %w", err)
	}
	return gjson.GetBytes(data, s.path), nil
}

// String evaluates the path and returns the result as a string.
func (s Selector) String(state any) (string, error) {
	res, err := s.Eval(state)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// Int evaluates the path and returns the result as an int64.
func (s Selector) Int(state any) (int64, error) {
	res, err := s.Eval(state)
	if err != nil {
		return 0, err
	}
	return res.Int(), nil
}

// Float evaluates the path and returns the result as a float64.
func (s Selector) Float(state any) (float64, error) {
	res, err := s.Eval(state)
	if err != nil {
		return 0, err
	}
	return res.Float(), nil
}

// Bool evaluates the path and returns the result as a bool.
func (s Selector) Bool(state any) (bool, error) {
	res, err := s.Eval(state)
	if err != nil {
		return false, err
	}
	return res.Bool(), nil
}

// Exists reports whether the path resolves to a value in the state.
func (s Selector) Exists(state any) (bool, error) {
	res, err := s.Eval(state)
	if err != nil {
		return false, err
	}
	return res.Exists(), nil
}

// Changed reports whether the selected value differs between two state
// snapshots, compared by raw JSON representation.
func (s Selector) Changed(prev, next any) (bool, error) {
	before, err := s.Eval(prev)
	if err != nil {
		return false, err
	}
	after, err := s.Eval(next)
	if err != nil {
		return false, err
	}
	return before.Raw != after.Raw, nil
}
