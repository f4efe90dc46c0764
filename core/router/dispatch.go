package router

import "net/http"

// Dispatcher resolves incoming requests against a route table. It holds no
// per-request state: every request walks normalize → lookup → verb check →
// invoke independently, with the table read-only during dispatch.
type Dispatcher struct {
	table *Table
}

// NewDispatcher creates a dispatcher over the given table.
func NewDispatcher(table *Table) *Dispatcher {
	return &Dispatcher{table: table}
}

// Table exposes the underlying route table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Dispatch resolves the request and always returns true: either a handler was
// invoked or the request was completed with 404. When the matched entry has
// both handler kinds, the callback handler wins. A callback handler's return
// value is forwarded verbatim to complete, exactly once, on this call path.
// A direct handler takes over the response entirely; the dispatcher does not
// complete on its behalf.
func (d *Dispatcher) Dispatch(req Request, complete Completion) bool {
	req.Path = NormalizePath(req.Path)

	e, ok := d.table.Lookup(req.Path)
	if !ok || !e.Verbs.Contains(req.Verb) {
		complete(NotFoundResponse())
		return true
	}

	d.invoke(e, req, complete)
	return true
}

// DispatchRoot is the root-path preprocessor hook. It reports "not handled"
// (false) unless the request addresses exactly "/", the root entry's verb
// mask allows the request verb, and a handler is registered; only then does
// it dispatch. Returning false lets the listener fall through to its normal
// route matching.
func (d *Dispatcher) DispatchRoot(req Request, complete Completion) bool {
	req.Path = NormalizePath(req.Path)
	if req.Path != "/" {
		return false
	}

	e, ok := d.table.Lookup("/")
	if !ok || !e.Verbs.Contains(req.Verb) {
		return false
	}
	if e.Callback == nil && e.Direct == nil {
		return false
	}

	d.invoke(e, req, complete)
	return true
}

func (d *Dispatcher) invoke(e Entry, req Request, complete Completion) {
	switch {
	case e.Callback != nil:
		complete(e.Callback(req))
	case e.Direct != nil:
		e.Direct(req)
	default:
		// Registered path whose handler kind never materialized.
		complete(NotFoundResponse())
	}
}

// NotFoundResponse is the canonical unmatched outcome: status 404, no body.
func NotFoundResponse() Response {
	return Response{Code: http.StatusNotFound, Headers: map[string][]string{}}
}
