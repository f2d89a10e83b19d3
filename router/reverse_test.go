package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterURL(t *testing.T) {
	t.Run("unknown name", func(t *testing.T) {
		r := New()
		_, err := r.URL("missing", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRouteNotFound)
	})

	t.Run("map context fills tokens by name", func(t *testing.T) {
		r := New()
		r.Get("/users/{id}/posts/{slug}", HandlerFunc(noopHandler)).Name("posts.show")

		url, err := r.URL("posts.show", map[string]string{"id": "42", "slug": "hello"})
		require.NoError(t, err)
		assert.Equal(t, "/users/42/posts/hello", url)
	})

	t.Run("map context fills optional tokens too", func(t *testing.T) {
		r := New()
		r.Get("/posts/{slug?}", HandlerFunc(noopHandler)).Name("posts")

		url, err := r.URL("posts", map[string]string{"slug": "hello"})
		require.NoError(t, err)
		assert.Equal(t, "/posts/hello", url)
	})

	t.Run("map context stringifies values", func(t *testing.T) {
		r := New()
		r.Get("/users/{id}/edit", HandlerFunc(noopHandler)).Name("profile")

		url, err := r.URL("profile", map[string]any{"id": 7})
		require.NoError(t, err)
		assert.Equal(t, "/users/7/edit", url)
	})

	t.Run("scalar context fills every token", func(t *testing.T) {
		r := New()
		r.Get("/users/{id}/edit", HandlerFunc(noopHandler)).Name("profile")

		url, err := r.URL("profile", 7)
		require.NoError(t, err)
		assert.Equal(t, "/users/7/edit", url)
	})

	t.Run("scalar context substitutes everywhere", func(t *testing.T) {
		r := New()
		r.Get("/a/{x}/b/{y}", HandlerFunc(noopHandler)).Name("pair")

		url, err := r.URL("pair", "v")
		require.NoError(t, err)
		assert.Equal(t, "/a/v/b/v", url)
	})

	t.Run("unfilled optional tokens stripped", func(t *testing.T) {
		r := New()
		r.Get("/posts/{slug?}", HandlerFunc(noopHandler)).Name("posts")

		url, err := r.URL("posts", nil)
		require.NoError(t, err)
		assert.Equal(t, "/posts", url)
	})

	t.Run("unfilled required tokens stay literal", func(t *testing.T) {
		r := New()
		r.Get("/users/{id}/edit", HandlerFunc(noopHandler)).Name("profile")

		url, err := r.URL("profile", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, "/users/{id}/edit", url)
	})

	t.Run("unfilled mid-pattern optional strips its slash", func(t *testing.T) {
		r := New()
		r.Get("/archive/{year?}/summary", HandlerFunc(noopHandler)).Name("archive.summary")

		url, err := r.URL("archive.summary", nil)
		require.NoError(t, err)
		assert.Equal(t, "/archive/summary", url)
	})

	t.Run("single-token optional route builds root", func(t *testing.T) {
		r := New()
		r.Get("/{page?}", HandlerFunc(noopHandler)).Name("page")

		url, err := r.URL("page", nil)
		require.NoError(t, err)
		assert.Equal(t, "/", url)
	})

	t.Run("string-keyed map of another value type", func(t *testing.T) {
		r := New()
		r.Get("/users/{id}/edit", HandlerFunc(noopHandler)).Name("profile")

		url, err := r.URL("profile", map[string]int{"id": 7})
		require.NoError(t, err)
		assert.Equal(t, "/users/7/edit", url)
	})

	t.Run("trailing wildcard and slash trimmed", func(t *testing.T) {
		r := New()
		r.Get("/files/*", HandlerFunc(noopHandler)).Name("files")

		url, err := r.URL("files", nil)
		require.NoError(t, err)
		assert.Equal(t, "/files", url)
	})

	t.Run("root stays root", func(t *testing.T) {
		r := New()
		r.Get("/", HandlerFunc(noopHandler)).Name("home")

		url, err := r.URL("home", nil)
		require.NoError(t, err)
		assert.Equal(t, "/", url)
	})
}

func TestReverseRoundTripUnfilledOptional(t *testing.T) {
	r := New()
	var matched bool
	r.Get("/archive/{year?}/summary", HandlerFunc(func(params Params, _ *http.Request) Response {
		matched = true
		assert.False(t, params.Has("year"))
		return Text(http.StatusOK, "summary")
	})).Name("archive.summary")

	url, err := r.URL("archive.summary", nil)
	require.NoError(t, err)
	require.Equal(t, "/archive/summary", url)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, matched)
}

func TestReverseRoundTrip(t *testing.T) {
	r := New()
	var captured Params
	r.Get("/users/{id}/edit", HandlerFunc(func(params Params, _ *http.Request) Response {
		captured = params
		return Text(http.StatusOK, "edit")
	})).Name("profile")

	url, err := r.URL("profile", map[string]any{"id": 7})
	require.NoError(t, err)
	require.Equal(t, "/users/7/edit", url)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", captured.Get("id"))
}
