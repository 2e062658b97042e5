// Package devtools provides development tooling for stores: a middleware
// that records dispatches as a bounded JSON action log, queries over the
// log, and replay of a recorded log into a store.
package devtools

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/middleware"
)

// Recorder captures committed dispatches as JSON log entries.
//
// Each entry holds {seq, time, action{name, id, payload}, state}, where
// state is the snapshot after the dispatch. The log is bounded: once
// capacity is reached the oldest entries are dropped.
type Recorder[S any] struct {
	mu       sync.Mutex
	capacity int
	seq      uint64
	entries  []string
}

// NewRecorder creates a recorder. A capacity of zero or less means
// unbounded.
func NewRecorder[S any](capacity int) *Recorder[S] {
	return &Recorder[S]{capacity: capacity}
}

// Middleware returns the recording middleware. Place it outermost to
// capture the state after the full downstream chain has committed. Only
// successful dispatches are recorded; errors pass through unrecorded.
func (r *Recorder[S]) Middleware() middleware.Middleware[S] {
	return func(api middleware.API[S]) func(next middleware.Handler) middleware.Handler {
		return func(next middleware.Handler) middleware.Handler {
			return func(act action.Action) error {
				if err := next(act); err != nil {
					return err
				}
				r.record(act, api.State())
				return nil
			}
		}
	}
}

// record appends one JSON entry for a committed dispatch.
func (r *Recorder[S]) record(act action.Action, state S) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++

	entry, _ := sjson.Set("", "seq", r.seq)
	entry, _ = sjson.Set(entry, "time", time.Now().Format(time.RFC3339Nano))
	entry, _ = sjson.Set(entry, "action.name", act.Name)
	entry, _ = sjson.Set(entry, "action.id", act.Meta.ID)

	if withPayload, err := sjson.Set(entry, "action.payload", act.Payload); err == nil {
		entry = withPayload
	} else {
		// Unencodable payload (e.g. a function); record its type instead.
		entry, _ = sjson.Set(entry, "action.payload", fmt.Sprintf("%T", act.Payload))
	}

	if withState, err := sjson.Set(entry, "state", state); err == nil {
		entry = withState
	}

	r.entries = append(r.entries, entry)
	if r.capacity > 0 && len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

// Len returns the number of retained entries.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Entries returns a copy of the retained log entries, oldest first.
func (r *Recorder[S]) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clear drops all retained entries. The sequence counter keeps advancing.
func (r *Recorder[S]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Export writes the log as JSON lines, oldest first.
func (r *Recorder[S]) Export(w io.Writer) error {
	for _, entry := range r.Entries() {
		if _, err := io.WriteString(w, entry+"\n"); err != nil {
			return fmt.Errorf("devtools: export: %w", err)
		}
	}
	return nil
}

// Query evaluates a gjson path against every retained entry, returning one
// result per entry in log order.
func (r *Recorder[S]) Query(path string) []gjson.Result {
	entries := r.Entries()
	out := make([]gjson.Result, 0, len(entries))
	for _, entry := range entries {
		out = append(out, gjson.Get(entry, path))
	}
	return out
}

// ActionNames returns the distinct action names in the log, in first-seen
// order.
func (r *Recorder[S]) ActionNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, res := range r.Query("action.name") {
		name := res.String()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
