package server

import (
	"log/slog"

	"github.com/routegate/routegate/core/transport"
)

// Option configures server behavior.
type Option func(*Server)

// WithLogger sets a custom logger for lifecycle and binding events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithModule injects the transport module to host this instance.
// Defaults to the shared process-wide HTTP module.
func WithModule(module transport.Module) Option {
	return func(s *Server) {
		s.module = module
	}
}
