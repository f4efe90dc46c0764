package server

import (
	"fmt"

	"github.com/routegate/routegate/core/config"
)

// Config holds server configuration with environment variable support.
type Config struct {
	Port int `env:"SERVER_PORT" envDefault:"8080"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a server pre-targeted at the configured port.
// Additional options apply on top of the configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	s := New(opts...)
	s.port = cfg.Port
	return s, nil
}

// Run starts the server on the port set by NewFromConfig, or the last port a
// previous Start used.
func (s *Server) Run() error {
	s.mu.Lock()
	port := s.port
	s.mu.Unlock()
	return s.Start(port)
}
