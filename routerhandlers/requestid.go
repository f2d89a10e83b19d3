package routerhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vitalvas/strada/router"
)

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored in the context by
// RequestIDMiddleware. Returns an empty string if no ID is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// GenerateUUIDv4 returns a random UUID version 4 string. It is the
// default request ID generator.
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.NewString()
}

// RequestIDConfig configures the Request ID middleware behaviour.
type RequestIDConfig struct {
	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// It receives the current request, allowing ID generation based on
	// request context. Defaults to GenerateUUIDv4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool
}

// RequestIDMiddleware returns a middleware that generates or propagates
// a request ID. The ID is stored in the request context and set on the
// request header for downstream middleware and the handler; handlers
// that want it echoed to the client attach it to their response.
func RequestIDMiddleware(cfg RequestIDConfig) router.Middleware {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	trustIncoming := cfg.TrustIncoming

	return func(r *http.Request) (*http.Request, router.Response) {
		id := ""
		if trustIncoming {
			id = r.Header.Get(headerName)
		}
		if id == "" {
			id = generate(r)
		}

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
		r.Header.Set(headerName, id)

		return r, nil
	}
}
