package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestParams(t *testing.T) {
	t.Run("outside dispatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, Params{}, RequestParams(req))
		assert.Nil(t, MatchedRoute(req))
	})

	t.Run("with params set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = WithParams(req, Params{
			byName:  map[string]string{"id": "42"},
			ordered: []string{"42"},
		})

		assert.Equal(t, "42", RequestParams(req).Get("id"))
	})

	t.Run("WithParams preserves the matched route", func(t *testing.T) {
		route := &Route{path: "/x"}
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req = setRouteContext(req, route, Params{ordered: []string{"a"}})
		req = WithParams(req, Params{ordered: []string{"b"}})

		assert.Same(t, route, MatchedRoute(req))
		assert.Equal(t, "b", RequestParams(req).Positional(0))
	})
}

func TestStaticRouteContextCached(t *testing.T) {
	route := &Route{path: "/static"}

	req1 := httptest.NewRequest(http.MethodGet, "/static", nil)
	req1 = setRouteContext(req1, route, Params{})
	req2 := httptest.NewRequest(http.MethodGet, "/static", nil)
	req2 = setRouteContext(req2, route, Params{})

	rc1, ok := req1.Context().Value(ctxKey).(*routeContext)
	require.True(t, ok)
	rc2, ok := req2.Context().Value(ctxKey).(*routeContext)
	require.True(t, ok)

	// Same cached value for every request on a parameterless route.
	assert.Same(t, rc1, rc2)
	assert.Same(t, route, rc1.route)
}
