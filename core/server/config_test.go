package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegate/routegate/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("invalid port rejected", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{Port: 0})
		assert.ErrorIs(t, err, server.ErrInvalidPort)
	})

	t.Run("run starts on the configured port", func(t *testing.T) {
		t.Parallel()

		m := newFakeModule()
		srv, err := server.NewFromConfig(server.Config{Port: 9090}, server.WithModule(m))
		require.NoError(t, err)

		require.NoError(t, srv.Run())
		defer srv.Stop()

		_, ok := m.listeners[9090]
		assert.True(t, ok)
	})
}
