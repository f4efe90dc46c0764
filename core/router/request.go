package router

// Request is the translated form of an incoming request handed to handlers.
// Headers carry one space-joined string per header name; the body has already
// been decoded as UTF-8 text by the transport boundary.
type Request struct {
	Verb        Verb
	Path        string // canonical relative path
	Headers     map[string]string
	PathParams  map[string]string
	QueryParams map[string]string
	Body        string
}

// Response is the structured response a callback handler returns.
// The dispatcher forwards it verbatim to the completion callback.
type Response struct {
	Code    int
	Body    []byte
	Headers map[string][]string
	Proto   string // protocol-version marker, e.g. "HTTP/1.1"
}

// Handler is a callback-style handler: invoked synchronously, it returns the
// response that completes the request.
type Handler func(Request) Response

// DirectHandler owns its own completion or side effects and returns nothing.
// It is only reached when no callback handler is registered for the path.
type DirectHandler func(Request)

// Completion delivers the final response for a request. The dispatcher calls
// it exactly once for every request it completes.
type Completion func(Response)
