package transport

import "errors"

var (
	// ErrInvalidRoutePath is returned when a path cannot be physically bound.
	ErrInvalidRoutePath = errors.New("invalid route path")

	// ErrRouteAlreadyBound is returned when a bind overlaps an existing one
	// on the same path and verbs.
	ErrRouteAlreadyBound = errors.New("route already bound")

	// ErrListenerClosed is returned when a listener cannot start accepting.
	ErrListenerClosed = errors.New("listener closed")
)
