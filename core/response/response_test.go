package response_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegate/routegate/core/response"
)

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("sets body and charset-qualified content type", func(t *testing.T) {
		t.Parallel()

		resp := response.Text("héllo", "text/plain", http.StatusOK)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []byte("héllo"), resp.Body)
		assert.Equal(t, []string{"text/plain;charset=utf-8"}, resp.Headers["content-type"])
	})

	t.Run("zero status defaults to 200", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusOK, response.Text("x", "text/plain", 0).Code)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals value", func(t *testing.T) {
		t.Parallel()

		resp, err := response.JSON(map[string]bool{"ok": true}, http.StatusOK)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, string(resp.Body))
		assert.Equal(t, []string{"application/json;charset=utf-8"}, resp.Headers["content-type"])
	})

	t.Run("unmarshalable value fails", func(t *testing.T) {
		t.Parallel()

		_, err := response.JSON(make(chan int), http.StatusOK)
		assert.Error(t, err)
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	resp := response.NotFound()
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, resp.Body)
}
