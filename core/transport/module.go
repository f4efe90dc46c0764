package transport

import (
	"io"
	"log/slog"
	"sync"
)

// HTTPModule is the net/http-backed Module: a process-wide registry of
// listeners keyed by port. Safe for concurrent use.
type HTTPModule struct {
	mu        sync.Mutex
	logger    *slog.Logger
	cfg       Config
	listeners map[int]*HTTPListener
}

// ModuleOption configures an HTTPModule.
type ModuleOption func(*HTTPModule)

// WithLogger sets a custom logger for transport operations.
func WithLogger(logger *slog.Logger) ModuleOption {
	return func(m *HTTPModule) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithConfig overrides the transport tuning parameters.
func WithConfig(cfg Config) ModuleOption {
	return func(m *HTTPModule) {
		m.cfg = cfg.normalized()
	}
}

// NewHTTPModule creates an HTTP transport module with a silent default logger.
func NewHTTPModule(opts ...ModuleOption) *HTTPModule {
	m := &HTTPModule{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:       DefaultConfig(),
		listeners: make(map[int]*HTTPListener),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	sharedOnce   sync.Once
	sharedModule *HTTPModule
)

// Shared returns the lazily created process-wide module. Router instances
// that do not inject their own module all end up here, which is why teardown
// must never unbind routes it did not create.
func Shared() *HTTPModule {
	sharedOnce.Do(func() {
		sharedModule = NewHTTPModule()
	})
	return sharedModule
}

// AcquireListener returns the listener for a port, creating it on first use.
// Ports outside the valid range yield no listener.
func (m *HTTPModule) AcquireListener(port int) (Listener, bool) {
	if port <= 0 || port > 65535 {
		return nil, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listeners[port]
	if !ok {
		l = newHTTPListener(port, m.cfg, m.logger)
		m.listeners[port] = l
	}
	return l, true
}

// StartAllListeners starts every listener that is not already serving.
// The first listen failure aborts the pass and is returned; listeners that
// started before it keep running.
func (m *HTTPModule) StartAllListeners() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.listeners {
		if err := l.start(); err != nil {
			return err
		}
	}
	return nil
}

// StopAllListeners gracefully stops all listeners. Route bindings and
// preprocessors are left in place for a later restart.
func (m *HTTPModule) StopAllListeners() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.listeners {
		l.stop()
	}
}
