package routerhandlers

import (
	"log/slog"
	"net/http"

	"github.com/vitalvas/strada/router"
)

// LoggingConfig configures the request logging middleware behaviour.
type LoggingConfig struct {
	// Logger is the structured logger to write to.
	// Defaults to slog.Default when nil.
	Logger *slog.Logger

	// Message overrides the log message. Defaults to "request".
	Message string
}

// LoggingMiddleware returns a middleware that writes one structured log
// line per request: method, path, and the request ID when
// RequestIDMiddleware ran earlier in the chain. It never short-circuits.
func LoggingMiddleware(cfg LoggingConfig) router.Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	message := cfg.Message
	if message == "" {
		message = "request"
	}

	return func(r *http.Request) (*http.Request, router.Response) {
		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		if id := RequestIDFromContext(r.Context()); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		logger.InfoContext(r.Context(), message, attrs...)

		return r, nil
	}
}
