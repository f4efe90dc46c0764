package router

import (
	"sort"
	"sync"
)

// Entry is the resolved registration state for one canonical path.
type Entry struct {
	Path     string
	Verbs    Verb
	Callback Handler
	Direct   DirectHandler
}

// Route describes a registered route for diagnostics.
type Route struct {
	Path  string
	Verbs Verb
}

// Table maps canonical paths to their accumulated verb masks and handlers.
// Registration is append-only with verb-merge semantics; the only removal
// operation is Clear, used during final teardown. Lookups may run
// concurrently with each other; writes are expected during the
// non-concurrent setup and teardown phases but are guarded regardless.
type Table struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Register records a callback-style handler for the path. The verb mask is
// merged into any existing registration; a previous callback handler for the
// same path is replaced, a direct handler is preserved.
func (t *Table) Register(path string, verbs Verb, h Handler) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(NormalizePath(path))
	e.Verbs = e.Verbs.Union(verbs)
	e.Callback = h
}

// RegisterDirect records a direct-invocation handler for the path with the
// same verb-merge and per-kind replacement semantics as Register.
func (t *Table) RegisterDirect(path string, verbs Verb, h DirectHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.entry(NormalizePath(path))
	e.Verbs = e.Verbs.Union(verbs)
	e.Direct = h
}

// entry returns the live entry for a canonical path, creating it on first use.
// Callers must hold the write lock.
func (t *Table) entry(path string) *Entry {
	e, ok := t.entries[path]
	if !ok {
		e = &Entry{Path: path}
		t.entries[path] = e
	}
	return e
}

// Lookup normalizes the path and returns a snapshot of its entry.
func (t *Table) Lookup(path string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[NormalizePath(path)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Routes returns all registered routes sorted by path.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	routes := make([]Route, 0, len(t.entries))
	for _, e := range t.entries {
		routes = append(routes, Route{Path: e.Path, Verbs: e.Verbs})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
	return routes
}

// Len returns the number of registered paths.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Clear empties the table. Listener-side handles bound for these routes are
// owned by the lifecycle layer and must be released there.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[string]*Entry)
}
