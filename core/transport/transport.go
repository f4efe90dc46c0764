package transport

import "github.com/routegate/routegate/core/router"

// Request is the raw wire form of an incoming request: multi-value headers
// and an undecoded body, exactly as the listener received them.
type Request struct {
	Verb        string
	Path        string
	Headers     map[string][]string
	PathParams  map[string]string
	QueryParams map[string]string
	Body        []byte
}

// Response is the wire form written back to the client.
type Response struct {
	Code    int
	Body    []byte
	Headers map[string][]string
	Proto   string
}

// Handler processes a request at the transport boundary. A handler that takes
// ownership of the request returns true and is responsible for calling
// complete exactly once; returning false lets the listener continue matching.
type Handler func(req *Request, complete func(*Response)) bool

// RouteHandle is an opaque token identifying a physically bound route.
type RouteHandle string

// PreprocessorHandle is an opaque token identifying a registered preprocessor.
type PreprocessorHandle string

// Listener is one port's worth of transport: it accepts connections and
// matches incoming requests against physically bound routes, offering each
// request to registered preprocessors first.
type Listener interface {
	// Port returns the port this listener serves.
	Port() int

	// BindRoute physically registers a route. The returned handle is the only
	// way to unbind it later. Fails with ErrInvalidRoutePath for paths the
	// transport cannot serve and ErrRouteAlreadyBound for an overlapping
	// duplicate bind.
	BindRoute(path string, verbs router.Verb, h Handler) (RouteHandle, error)

	// UnbindRoute releases a bound route. Unknown handles are ignored.
	UnbindRoute(handle RouteHandle)

	// RegisterPreprocessor installs a hook consulted for every request before
	// normal route matching, in registration order.
	RegisterPreprocessor(h Handler) PreprocessorHandle

	// UnregisterPreprocessor removes a previously installed hook.
	UnregisterPreprocessor(handle PreprocessorHandle)
}

// Module is the process-wide transport: a registry of listeners keyed by
// port, started and stopped as a group. A Module may be shared by several
// router instances and survive each of them.
type Module interface {
	// AcquireListener returns the listener for a port, creating it if needed.
	// Returns false when the transport cannot provide one.
	AcquireListener(port int) (Listener, bool)

	// StartAllListeners begins accepting connections on every listener that
	// is not already serving.
	StartAllListeners() error

	// StopAllListeners stops accepting on all listeners. Bound routes and
	// preprocessors stay registered.
	StopAllListeners()
}
