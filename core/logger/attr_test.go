package logger_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routegate/routegate/core/logger"
	"github.com/routegate/routegate/core/router"
)

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(assert.AnError)
	assert.Equal(t, "error", attr.Key)
}

func TestRoute(t *testing.T) {
	t.Parallel()

	attr := logger.Route("/a", router.VerbGet.Union(router.VerbPost))
	assert.Equal(t, "route", attr.Key)

	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "/a", group[0].Value.String())
	assert.Equal(t, "GET|POST", group[1].Value.String())
}

func TestPort(t *testing.T) {
	t.Parallel()

	attr := logger.Port(8080)
	assert.Equal(t, "port", attr.Key)
	assert.Equal(t, int64(8080), attr.Value.Int64())
}
