package server

import "errors"

var (
	// ErrInvalidPort is returned when Start is called with a port <= 0.
	ErrInvalidPort = errors.New("port number must be greater than zero")

	// ErrRouterUnavailable is returned when the transport cannot provide a
	// listener for the requested port.
	ErrRouterUnavailable = errors.New("transport could not provide a listener")

	// ErrServerAlreadyRunning is returned when Start is called on a running
	// instance.
	ErrServerAlreadyRunning = errors.New("server is already running")
)
