package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/routegate/routegate/core/router"
)

// HTTPListener serves one port. Incoming requests are offered to registered
// preprocessors in registration order first; if none takes the request it is
// matched against bound routes by exact canonical path and verb mask, and
// answered 404 otherwise. Matching reads tolerate concurrent binds, though
// binds are expected during setup and teardown phases.
type HTTPListener struct {
	mu     sync.RWMutex
	port   int
	cfg    Config
	logger *slog.Logger

	routes     map[RouteHandle]*boundRoute
	routeOrder []RouteHandle
	pres       []preprocessor

	server  *http.Server
	running bool
}

type boundRoute struct {
	path  string
	verbs router.Verb
	fn    Handler
}

type preprocessor struct {
	handle PreprocessorHandle
	fn     Handler
}

func newHTTPListener(port int, cfg Config, logger *slog.Logger) *HTTPListener {
	return &HTTPListener{
		port:   port,
		cfg:    cfg.normalized(),
		logger: logger,
		routes: make(map[RouteHandle]*boundRoute),
	}
}

// Port returns the port this listener serves.
func (l *HTTPListener) Port() int {
	return l.port
}

// BindRoute registers a route and returns its handle. The path is stored in
// canonical form; a bind overlapping an existing path+verb combination fails
// with ErrRouteAlreadyBound.
func (l *HTTPListener) BindRoute(path string, verbs router.Verb, h Handler) (RouteHandle, error) {
	canonical := router.NormalizePath(path)
	if err := validateRoutePath(canonical); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rt := range l.routes {
		if rt.path == canonical && rt.verbs.Contains(verbs) {
			return "", fmt.Errorf("%w: %s %s", ErrRouteAlreadyBound, verbs, canonical)
		}
	}

	handle := RouteHandle(uuid.NewString())
	l.routes[handle] = &boundRoute{path: canonical, verbs: verbs, fn: h}
	l.routeOrder = append(l.routeOrder, handle)

	l.logger.Debug("route bound", "port", l.port, "path", canonical, "verbs", verbs.String())
	return handle, nil
}

// UnbindRoute releases a bound route. Unknown or already released handles are
// ignored.
func (l *HTTPListener) UnbindRoute(handle RouteHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.routes[handle]; !ok {
		return
	}
	delete(l.routes, handle)
	for i, h := range l.routeOrder {
		if h == handle {
			l.routeOrder = append(l.routeOrder[:i], l.routeOrder[i+1:]...)
			break
		}
	}
}

// RegisterPreprocessor installs a hook consulted before route matching.
func (l *HTTPListener) RegisterPreprocessor(h Handler) PreprocessorHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	handle := PreprocessorHandle(uuid.NewString())
	l.pres = append(l.pres, preprocessor{handle: handle, fn: h})
	return handle
}

// UnregisterPreprocessor removes a previously installed hook.
func (l *HTTPListener) UnregisterPreprocessor(handle PreprocessorHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.pres {
		if p.handle == handle {
			l.pres = append(l.pres[:i], l.pres[i+1:]...)
			return
		}
	}
}

// ServeHTTP adapts net/http requests onto the transport boundary.
func (l *HTTPListener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := wireRequest(r)

	completed := false
	complete := func(resp *Response) {
		if completed || resp == nil {
			return
		}
		completed = true
		writeResponse(w, resp)
	}

	l.mu.RLock()
	pres := make([]preprocessor, len(l.pres))
	copy(pres, l.pres)
	order := make([]RouteHandle, len(l.routeOrder))
	copy(order, l.routeOrder)
	routes := make(map[RouteHandle]*boundRoute, len(l.routes))
	for h, rt := range l.routes {
		routes[h] = rt
	}
	l.mu.RUnlock()

	for _, p := range pres {
		if p.fn(req, complete) {
			return
		}
	}

	canonical := router.NormalizePath(req.Path)
	verb, known := router.ParseVerb(req.Verb)
	if known {
		for _, h := range order {
			rt := routes[h]
			if rt.path == canonical && rt.verbs.Contains(verb) {
				if rt.fn(req, complete) {
					return
				}
			}
		}
	}

	complete(&Response{Code: http.StatusNotFound, Headers: map[string][]string{}})
}

// start begins serving. The listen happens synchronously so port conflicts
// surface to the caller; the accept loop runs in its own goroutine.
func (l *HTTPListener) start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("%w: port %d: %w", ErrListenerClosed, l.port, err)
	}

	l.server = &http.Server{
		Handler:        l,
		ReadTimeout:    l.cfg.ReadTimeout,
		WriteTimeout:   l.cfg.WriteTimeout,
		IdleTimeout:    l.cfg.IdleTimeout,
		MaxHeaderBytes: l.cfg.MaxHeaderBytes,
	}
	l.running = true

	srv := l.server
	go func() {
		l.logger.Info("listener started", "port", l.port)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			l.logger.Error("listener stopped unexpectedly", "port", l.port, "error", err)
		}
	}()

	return nil
}

// stop shuts the listener down gracefully. Safe to call when not running.
func (l *HTTPListener) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running || l.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.ShutdownTimeout)
	defer cancel()

	if err := l.server.Shutdown(ctx); err != nil {
		l.logger.Error("listener shutdown", "port", l.port, "error", err)
	}
	l.server = nil
	l.running = false
	l.logger.Info("listener stopped", "port", l.port)
}

// validateRoutePath enforces the transport's own path rules: canonical paths
// must not carry whitespace, query or fragment markers, or control bytes.
func validateRoutePath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidRoutePath, path)
	}
	for _, r := range path {
		if r == '?' || r == '#' || r == ' ' || r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %q", ErrInvalidRoutePath, path)
		}
	}
	return nil
}

func wireRequest(r *http.Request) *Request {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		body = nil
	}

	query := make(map[string]string)
	for name, vals := range r.URL.Query() {
		if len(vals) > 0 {
			query[name] = vals[0]
		}
	}

	headers := make(map[string][]string, len(r.Header))
	for name, vals := range r.Header {
		headers[name] = append([]string(nil), vals...)
	}

	return &Request{
		Verb:        r.Method,
		Path:        r.URL.Path,
		Headers:     headers,
		PathParams:  map[string]string{},
		QueryParams: query,
		Body:        body,
	}
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	for name, vals := range resp.Headers {
		for _, v := range vals {
			w.Header().Add(name, v)
		}
	}
	code := resp.Code
	if code == 0 {
		code = http.StatusOK
	}
	w.WriteHeader(code)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}
