package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegate/routegate/core/router"
)

func TestTableRegister(t *testing.T) {
	t.Parallel()

	t.Run("verbs accumulate across registrations", func(t *testing.T) {
		t.Parallel()

		tbl := router.NewTable()
		tbl.Register("/a", router.VerbGet, func(router.Request) router.Response { return router.Response{} })
		tbl.Register("/a", router.VerbPost, func(router.Request) router.Response { return router.Response{} })

		e, ok := tbl.Lookup("/a")
		require.True(t, ok)
		assert.True(t, e.Verbs.Contains(router.VerbGet))
		assert.True(t, e.Verbs.Contains(router.VerbPost))
		assert.False(t, e.Verbs.Contains(router.VerbDelete))
	})

	t.Run("last callback registration wins", func(t *testing.T) {
		t.Parallel()

		tbl := router.NewTable()
		tbl.Register("/a", router.VerbGet, func(router.Request) router.Response {
			return router.Response{Code: 200}
		})
		tbl.Register("/a", router.VerbGet, func(router.Request) router.Response {
			return router.Response{Code: 201}
		})

		e, ok := tbl.Lookup("/a")
		require.True(t, ok)
		require.NotNil(t, e.Callback)
		assert.Equal(t, 201, e.Callback(router.Request{}).Code)
	})

	t.Run("registering one kind preserves the other", func(t *testing.T) {
		t.Parallel()

		tbl := router.NewTable()
		directCalled := false
		tbl.RegisterDirect("/a", router.VerbGet, func(router.Request) { directCalled = true })
		tbl.Register("/a", router.VerbPost, func(router.Request) router.Response {
			return router.Response{Code: 200}
		})

		e, ok := tbl.Lookup("/a")
		require.True(t, ok)
		require.NotNil(t, e.Callback)
		require.NotNil(t, e.Direct)
		e.Direct(router.Request{})
		assert.True(t, directCalled)
	})

	t.Run("paths are normalized on registration and lookup", func(t *testing.T) {
		t.Parallel()

		tbl := router.NewTable()
		tbl.Register(" /a/ ", router.VerbGet, func(router.Request) router.Response { return router.Response{} })

		_, ok := tbl.Lookup("a")
		assert.True(t, ok)
		_, ok = tbl.Lookup("/a//")
		assert.True(t, ok)
		assert.Equal(t, 1, tbl.Len())
	})
}

func TestTableRoutes(t *testing.T) {
	t.Parallel()

	tbl := router.NewTable()
	tbl.Register("/b", router.VerbPost, func(router.Request) router.Response { return router.Response{} })
	tbl.RegisterDirect("/a", router.VerbGet, func(router.Request) {})

	routes := tbl.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/a", routes[0].Path)
	assert.Equal(t, "/b", routes[1].Path)
	assert.True(t, routes[1].Verbs.Contains(router.VerbPost))
}

func TestTableClear(t *testing.T) {
	t.Parallel()

	tbl := router.NewTable()
	tbl.Register("/a", router.VerbGet, func(router.Request) router.Response { return router.Response{} })
	tbl.Clear()

	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.Lookup("/a")
	assert.False(t, ok)
}
