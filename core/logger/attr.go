// Package logger provides slog attribute helpers shared by the routing and
// transport packages.
package logger

import (
	"log/slog"

	"github.com/routegate/routegate/core/router"
)

// Attribute helpers use the empty Attr pattern for nil safety, so calls like
// log.Error("bind failed", logger.Error(err)) need no explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Route groups a route's canonical path and verb mask under the key "route".
func Route(path string, verbs router.Verb) slog.Attr {
	return slog.Group("route",
		slog.String("path", path),
		slog.String("verbs", verbs.String()),
	)
}

// Port creates an attribute for a listener port.
func Port(port int) slog.Attr {
	return slog.Int("port", port)
}
