// Package script embeds Lua-defined reducers and middleware into a store.
//
// An Engine owns one Lua state. gopher-lua's LState is not goroutine-safe,
// so the engine serializes every operation through a single worker
// goroutine; reducers and middleware built from an engine may therefore be
// shared freely.
//
// State and payload values cross the Go/Lua boundary through a JSON-shaped
// bridge: structs become tables via their JSON encoding, and the table a
// Lua reducer returns is decoded back into the store's state type.
package script
