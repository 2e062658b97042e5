// Package action defines the action types that flow through a store's
// dispatch pipeline.
//
// An Action is a named request for a state transition. Typed dispatchers
// construct actions from payloads and forward them to a bound dispatch
// function, normally a store's Dispatch method. An optional Future attached
// to an action lets the dispatching caller await a result that some handler
// chooses to resolve.
package action
