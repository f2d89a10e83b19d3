// Package routerhandlers provides ready-made chain middleware for the
// router.
//
// Each middleware is built from a config struct with zero-value
// defaults and returns a router.Middleware that either passes the
// request through (optionally annotated) or short-circuits dispatch
// with a response.
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates a request ID and stores it
// in the request context:
//
//	r.Use(routerhandlers.RequestIDMiddleware(routerhandlers.RequestIDConfig{}))
//
// # Basic Auth Middleware
//
// BasicAuthMiddleware implements HTTP Basic Authentication per RFC 7617,
// short-circuiting with 401 Unauthorized when credentials are missing or
// invalid. Static credential comparison is constant-time.
//
//	mw, err := routerhandlers.BasicAuthMiddleware(routerhandlers.BasicAuthConfig{
//	    Realm:       "My App",
//	    Credentials: map[string]string{"admin": "secret"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Get("/admin", adminHome).Middleware(mw)
//
// # Content-Type Check Middleware
//
// ContentTypeCheckMiddleware validates the Content-Type header of
// body-carrying requests, short-circuiting with 415 Unsupported Media
// Type on a mismatch.
//
// # Logging Middleware
//
// LoggingMiddleware writes one structured log line per request via
// log/slog.
package routerhandlers
