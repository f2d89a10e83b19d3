// Package router implements a request router and dispatcher that matches
// incoming HTTP requests against an ordered route table and invokes the
// handler of the first matching route.
//
// Routes are matched in registration order; the first route whose method
// set and path pattern accept the request wins. This makes precedence
// explicit: register literal routes before the generic patterns that
// would shadow them.
//
// # Route Registration
//
// Create a router and register handlers:
//
//	r := router.New()
//	r.Get("/users/{id}", showUser)
//	r.Post("/users", createUser)
//	http.ListenAndServe(":8080", r)
//
// Add and the per-method wrappers return the *Route, which acts as a
// builder for route-local configuration:
//
//	r.Get("/users/{id}/edit", editUser).
//		Name("users.edit").
//		Middleware(requireAuth)
//
// # Path Patterns
//
// A pattern mixes literal text with dynamic segments:
//
//	/users/{id}          required segment, matches [A-Za-z0-9_-]+
//	/posts/{slug?}       optional segment; when absent, the preceding
//	                     slash is absent too
//	/files/*             trailing wildcard capturing the remaining path,
//	                     slashes included
//
// Matched values are delivered as Params: named when every capture maps
// to a declared token, positional when a wildcard leaves captures
// unnamed. Handlers read them from the request context:
//
//	params := router.RequestParams(req)
//	id := params.Get("id")
//
// # Reverse Routing
//
// Named routes build URLs from parameter values:
//
//	r.Get("/users/{id}/edit", editUser).Name("users.edit")
//	url, err := r.URL("users.edit", map[string]string{"id": "7"})
//	// url == "/users/7/edit"
//
// A non-map context value fills every token with the same value, which
// is convenient for single-parameter routes:
//
//	url, _ := r.URL("users.edit", 7)
//
// # Middleware
//
// Middleware runs before the handler and may short-circuit dispatch by
// returning a Response. Global middleware (Use) is queued ahead of
// route-local middleware for every request:
//
//	r.Use(routerhandlers.LoggingMiddleware(routerhandlers.LoggingConfig{}))
//	r.Get("/admin", adminHome).Middleware(requireAuth)
//
// # Handlers
//
// A route handler is one of a closed set: a HandlerFunc called in
// process, a Target naming a type and method for an external resolver
// (typically a DI container), or a template directive created by
// Template. The Invoker resolves the variant; the router never inspects
// handler shape beyond its tag.
//
// # Manifests
//
// Route tables can be declared in YAML and loaded with LoadManifest,
// resolving handler and middleware identifiers through a
// ManifestRegistry.
package router
