package routerhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeCheckMiddleware(t *testing.T) {
	t.Run("requires allowed types", func(t *testing.T) {
		_, err := ContentTypeCheckMiddleware(ContentTypeCheckConfig{})
		assert.ErrorIs(t, err, ErrNoAllowedTypes)
	})

	mw, err := ContentTypeCheckMiddleware(ContentTypeCheckConfig{
		AllowedTypes: []string{"application/json"},
	})
	require.NoError(t, err)

	t.Run("unchecked method passes without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		out, resp := mw(req)

		assert.Nil(t, resp)
		assert.NotNil(t, out)
	})

	t.Run("missing header short-circuits 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		_, resp := mw(req)

		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode())
	})

	t.Run("disallowed type short-circuits 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "text/html")
		_, resp := mw(req)

		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode())
	})

	t.Run("allowed type passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", "application/json")
		_, resp := mw(req)

		assert.Nil(t, resp)
	})

	t.Run("parameters and case ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Content-Type", "Application/JSON; charset=utf-8")
		_, resp := mw(req)

		assert.Nil(t, resp)
	})

	t.Run("custom method set", func(t *testing.T) {
		custom, err := ContentTypeCheckMiddleware(ContentTypeCheckConfig{
			AllowedTypes: []string{"application/json"},
			Methods:      []string{http.MethodDelete},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		_, resp := custom(req)
		assert.Nil(t, resp)

		req = httptest.NewRequest(http.MethodDelete, "/", nil)
		_, resp = custom(req)
		assert.NotNil(t, resp)
	})
}
