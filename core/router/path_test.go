package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routegate/routegate/core/router"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty string", "", "/"},
		{"whitespace only", "  ", "/"},
		{"tabs and newlines", "\t\n", "/"},
		{"root", "/", "/"},
		{"missing leading slash", "foo", "/foo"},
		{"already canonical", "/foo", "/foo"},
		{"trailing slash", "/foo/", "/foo"},
		{"multiple trailing slashes", "/foo//", "/foo"},
		{"many trailing slashes", "/foo////", "/foo"},
		{"only slashes", "///", "/"},
		{"surrounding whitespace", "  /foo/  ", "/foo"},
		{"whitespace then bare segment", " foo ", "/foo"},
		{"nested path", "/foo/bar", "/foo/bar"},
		{"nested with trailing slash", "/foo/bar/", "/foo/bar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, router.NormalizePath(tt.raw))
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "  ", "/", "foo", "/foo/", "/foo//", "///", " /a/b/c/ ", "?q=1"}
	for _, raw := range inputs {
		once := router.NormalizePath(raw)
		assert.Equal(t, once, router.NormalizePath(once), "input %q", raw)
	}
}
