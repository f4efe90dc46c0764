package router

import "strings"

// NormalizePath converts a raw path into its canonical form: surrounding
// whitespace trimmed, empty input mapped to "/", a leading slash guaranteed
// and trailing slashes stripped down to a minimum length of one.
// Total over all strings and idempotent.
func NormalizePath(raw string) string {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return path
}
