package devtools_test

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/fluxion/action"
	"github.com/dshills/fluxion/devtools"
)

func TestReplayWithDecoder(t *testing.T) {
	rec := devtools.NewRecorder[counterState](0)
	source := counterStore(rec)

	_ = source.Dispatch(action.New("counter.increment", 2))
	_ = source.Dispatch(action.New("counter.increment", 3))

	target := counterStore(devtools.NewRecorder[counterState](0))

	decode := func(name string, payload gjson.Result) (any, bool) {
		if name != "counter.increment" {
			return nil, false
		}
		return int(payload.Int()), true
	}

	n, err := devtools.Replay(rec.Entries(), target.Dispatch, decode)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 replayed actions, got %d", n)
	}
	if target.State().Count != 5 {
		t.Errorf("expected replayed count 5, got %d", target.State().Count)
	}
}

func TestReplayDecoderSkips(t *testing.T) {
	rec := devtools.NewRecorder[counterState](0)
	source := counterStore(rec)

	_ = source.Dispatch(action.New("counter.increment", 1))
	_ = source.Dispatch(action.New("other", nil))

	target := counterStore(devtools.NewRecorder[counterState](0))

	decode := func(name string, payload gjson.Result) (any, bool) {
		if name != "counter.increment" {
			return nil, false
		}
		return int(payload.Int()), true
	}

	n, err := devtools.Replay(rec.Entries(), target.Dispatch, decode)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 replayed action after skip, got %d", n)
	}
}

func TestReplayMissingName(t *testing.T) {
	entries := []string{`{"seq":1}`}

	_, err := devtools.Replay(entries, func(action.Action) error { return nil }, nil)
	if err == nil || !strings.Contains(err.Error(), "missing action name") {
		t.Errorf("expected missing name error, got %v", err)
	}
}

func TestReplayDispatchErrorStops(t *testing.T) {
	rec := devtools.NewRecorder[counterState](0)
	source := counterStore(rec)

	_ = source.Dispatch(action.New("counter.increment", 1))
	_ = source.Dispatch(action.New("counter.increment", 1))

	calls := 0
	failing := func(action.Action) error {
		calls++
		return errTest
	}

	n, err := devtools.Replay(rec.Entries(), failing, func(name string, p gjson.Result) (any, bool) {
		return int(p.Int()), true
	})
	if err == nil {
		t.Fatal("expected replay to surface the dispatch error")
	}
	if n != 0 {
		t.Errorf("expected 0 successful dispatches, got %d", n)
	}
	if calls != 1 {
		t.Errorf("replay should stop at first error, made %d calls", calls)
	}
}

func TestReplayMarksSource(t *testing.T) {
	entries := []string{`{"action":{"name":"x","payload":1}}`}

	var got action.Action
	_, err := devtools.Replay(entries, func(act action.Action) error {
		got = act
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if got.Meta.Source != "replay" {
		t.Errorf("expected replayed action source, got %q", got.Meta.Source)
	}
}
