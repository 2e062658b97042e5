// Package store owns application state and coordinates the dispatch
// pipeline: middleware chain, reducer table, state commit, and change
// notification.
//
// A Store holds one state snapshot at a time. Dispatch runs an action
// through the configured middleware chain; the terminal step invokes the
// frozen reducer table and, if the whole chain returns without error,
// replaces the state and publishes a Change to subscribers synchronously in
// subscription order. Errors anywhere in the chain abort the dispatch with
// no partial commit.
//
// The model is cooperative and effectively single-threaded: all steps for
// one action run synchronously on the dispatching goroutine. Middleware that
// defers work may resume after later dispatches have committed; reducers
// must tolerate running against whatever state is current at that point.
package store
