// Package router implements the route table and dispatch engine that sits
// between an external listener transport and application handlers. Routes are
// matched by exact canonical path and an HTTP verb bitmask; there are no
// wildcard segments, regex patterns, or middleware chains.
//
// # Path Normalization
//
// Every path entering the package is normalized first: surrounding whitespace
// is trimmed, an empty path becomes "/", a missing leading slash is added and
// trailing slashes are stripped down to a minimum length of one. Normalization
// is total and idempotent, so "/users/" and "users" address the same route.
//
// # Verb Masks
//
// Allowed methods are tracked per route as a bitmask. Registering the same
// path twice with different verbs accumulates them:
//
//	t := router.NewTable()
//	t.Register("/items", router.VerbGet, listItems)
//	t.Register("/items", router.VerbPost, createItem)
//	// "/items" now accepts both GET and POST.
//
// # Handler Kinds
//
// A route can carry two kinds of handlers at once. A callback handler returns
// a Response which the dispatcher forwards to the completion callback. A
// direct handler owns its own output and returns nothing. When both are
// registered for one path, the callback handler wins at dispatch time.
//
// # Dispatching
//
// Dispatcher resolves each request independently against the table and
// guarantees exactly one completion per request it owns: matched callback
// routes complete with the handler's response, unmatched requests complete
// with 404. DispatchRoot implements the root-path preprocessor contract used
// by listeners whose native matching treats "/" ambiguously.
package router
