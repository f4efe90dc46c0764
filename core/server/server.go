package server

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/routegate/routegate/core/logger"
	"github.com/routegate/routegate/core/router"
	"github.com/routegate/routegate/core/transport"
)

// Server hosts one router instance on a transport module. Registration and
// lifecycle transitions are guarded by a single mutex; dispatch itself runs
// lock-free against the read-mostly route table.
type Server struct {
	mu     sync.Mutex
	logger *slog.Logger
	module transport.Module

	table      *router.Table
	dispatcher *router.Dispatcher

	listener transport.Listener
	port     int
	running  bool

	rootRegistered bool
	rootHandle     transport.PreprocessorHandle

	// Handles this instance created; teardown unbinds exactly these.
	ownedHandles []transport.RouteHandle
	boundVerbs   map[string]router.Verb
}

// New creates a server over the shared HTTP transport module unless another
// module is injected via WithModule.
func New(opts ...Option) *Server {
	table := router.NewTable()
	s := &Server{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		table:      table,
		dispatcher: router.NewDispatcher(table),
		boundVerbs: make(map[string]router.Verb),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.module == nil {
		s.module = transport.Shared()
	}
	return s
}

// BindRoute registers a callback-style handler for the path. Verbs accumulate
// across registrations of the same path; a previous callback handler is
// replaced. With a live listener attached the route is bound immediately.
func (s *Server) BindRoute(path string, verbs router.Verb, h router.Handler) {
	s.table.Register(path, verbs, h)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.bindPathLocked(router.NormalizePath(path), verbs)
	}
}

// BindRouteDirect registers a direct-invocation handler for the path with the
// same accumulation and immediate-bind semantics as BindRoute. At dispatch
// time a callback handler registered for the same path takes precedence.
func (s *Server) BindRouteDirect(path string, verbs router.Verb, h router.DirectHandler) {
	s.table.RegisterDirect(path, verbs, h)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.bindPathLocked(router.NormalizePath(path), verbs)
	}
}

// Routes returns the registered routes, including any that failed to bind
// physically.
func (s *Server) Routes() []router.Route {
	return s.table.Routes()
}

// Start acquires a listener for the port, binds every registered route into
// it, and starts all listeners of the transport module.
func (s *Server) Start(port int) error {
	if port <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyRunning
	}

	l, ok := s.module.AcquireListener(port)
	if !ok {
		return fmt.Errorf("%w: port %d", ErrRouterUnavailable, port)
	}
	s.listener = l
	s.port = port

	for _, rt := range s.table.Routes() {
		s.bindPathLocked(rt.Path, rt.Verbs)
	}

	if err := s.module.StartAllListeners(); err != nil {
		s.releaseBindingsLocked()
		return err
	}

	s.running = true
	s.logger.Info("server started", logger.Port(port))
	return nil
}

// Stop tears this instance down. Idempotent, safe before any Start. All
// listeners of the module are stopped unconditionally because the module may
// be shared process-wide; only the bindings this instance created are
// released. Table entries stay registered so a later Start re-binds them.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.module.StopAllListeners()
	s.releaseBindingsLocked()

	if s.running {
		s.logger.Info("server stopped", logger.Port(s.port))
	}
	s.running = false
}

// Close is the final teardown: Stop plus emptying the route table.
func (s *Server) Close() {
	s.Stop()
	s.table.Clear()
}

// releaseBindingsLocked invalidates everything this instance bound into the
// listener. Stale bindings would route requests into a dead instance on the
// transport's next start.
func (s *Server) releaseBindingsLocked() {
	if s.listener == nil {
		return
	}

	if s.rootRegistered {
		s.listener.UnregisterPreprocessor(s.rootHandle)
		s.rootRegistered = false
		s.rootHandle = ""
	}

	for _, h := range s.ownedHandles {
		s.listener.UnbindRoute(h)
	}
	s.ownedHandles = nil
	s.boundVerbs = make(map[string]router.Verb)
	s.listener = nil
}

// bindPathLocked physically binds the not-yet-bound verbs of a canonical path
// into the live listener. The root path goes through the preprocessor hook
// instead of a normal bind. Bind failures are logged and skipped; the route
// stays in the table.
func (s *Server) bindPathLocked(path string, verbs router.Verb) {
	if path == "/" {
		s.registerRootLocked()
		return
	}

	delta := verbs &^ s.boundVerbs[path]
	if delta == 0 {
		return
	}

	handle, err := s.listener.BindRoute(path, delta, s.routeHandler())
	if err != nil {
		s.logger.Error("route not bound", logger.Route(path, delta), logger.Error(err))
		return
	}

	s.ownedHandles = append(s.ownedHandles, handle)
	s.boundVerbs[path] = s.boundVerbs[path] | delta
}

// registerRootLocked installs the root preprocessor at most once per
// instance, no matter how many times "/" is registered through either
// registration surface.
func (s *Server) registerRootLocked() {
	if s.rootRegistered {
		return
	}
	s.rootHandle = s.listener.RegisterPreprocessor(s.rootPreprocessor())
	s.rootRegistered = true
}

// routeHandler adapts bound-route invocations onto the dispatcher.
func (s *Server) routeHandler() transport.Handler {
	return func(req *transport.Request, complete func(*transport.Response)) bool {
		return s.dispatcher.Dispatch(translateRequest(req), func(resp router.Response) {
			complete(translateResponse(resp))
		})
	}
}

// rootPreprocessor adapts the listener hook onto DispatchRoot: requests not
// addressing "/" or not allowed by the root verb mask fall through to the
// listener's normal matching.
func (s *Server) rootPreprocessor() transport.Handler {
	return func(req *transport.Request, complete func(*transport.Response)) bool {
		return s.dispatcher.DispatchRoot(translateRequest(req), func(resp router.Response) {
			complete(translateResponse(resp))
		})
	}
}
