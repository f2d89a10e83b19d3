package router

import (
	"net/http"
	"strings"
)

// Router owns the route table: an ordered list of routes matched in
// registration order, plus a name index for reverse routing. Populate
// it during bootstrap and treat it as read-only once serving; concurrent
// dispatch reads are safe only against a frozen table.
//
// Router implements http.Handler, so it can be registered to serve
// requests directly:
//
//	r := router.New()
//	r.Get("/", home)
//	http.ListenAndServe(":8080", r)
type Router struct {
	routes      []*Route
	namedRoutes map[string]*Route
	middleware  []Middleware

	renderer Renderer
	resolver ResolverFunc
	invoker  Invoker
}

// New returns a new router instance.
func New() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
	}
}

// Add registers a new route and returns it for fluent configuration.
// The pattern is compiled immediately; a malformed pattern is recorded
// on the route, which then never matches and surfaces the error via Err.
// A nil or empty methods list means the route accepts any method.
func (t *Router) Add(path string, methods []string, h Handler) *Route {
	route := &Route{
		path:        path,
		handler:     h,
		namedRoutes: t.namedRoutes,
	}
	for _, m := range methods {
		route.methods = append(route.methods, strings.ToUpper(m))
	}
	route.pattern, route.err = compilePattern(path)
	t.routes = append(t.routes, route)
	return route
}

// Get registers a route for GET requests.
func (t *Router) Get(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodGet}, h)
}

// Post registers a route for POST requests.
func (t *Router) Post(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodPost}, h)
}

// Put registers a route for PUT requests.
func (t *Router) Put(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodPut}, h)
}

// Patch registers a route for PATCH requests.
func (t *Router) Patch(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodPatch}, h)
}

// Delete registers a route for DELETE requests.
func (t *Router) Delete(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodDelete}, h)
}

// Options registers a route for OPTIONS requests.
func (t *Router) Options(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodOptions}, h)
}

// Head registers a route for HEAD requests.
func (t *Router) Head(path string, h Handler) *Route {
	return t.Add(path, []string{http.MethodHead}, h)
}

// Any registers a route that accepts every HTTP method.
func (t *Router) Any(path string, h Handler) *Route {
	return t.Add(path, nil, h)
}

// Template registers a method-less route that renders the named template
// with no arguments beyond the route params.
func (t *Router) Template(path, templateID string) *Route {
	route := t.Add(path, nil, nil)
	route.template = templateID
	return route
}

// Use appends global middleware. It is queued ahead of route-local
// middleware on every request's chain.
func (t *Router) Use(specs ...Middleware) {
	t.middleware = append(t.middleware, specs...)
}

// Route returns the route registered under the given name, or nil.
func (t *Router) Route(name string) *Route {
	return t.namedRoutes[name]
}

// SetRenderer installs the template renderer used by the default invoker
// for routes registered via Template.
func (t *Router) SetRenderer(r Renderer) *Router {
	t.renderer = r
	return t
}

// SetResolver installs the resolver used by the default invoker for
// Target handlers.
func (t *Router) SetResolver(f ResolverFunc) *Router {
	t.resolver = f
	return t
}

// SetInvoker replaces the default invoker entirely, typically with a
// DI-container-backed implementation. SetRenderer and SetResolver have
// no effect on a custom invoker.
func (t *Router) SetInvoker(inv Invoker) *Router {
	t.invoker = inv
	return t
}

// ServeHTTP dispatches the request through a fresh chain seeded with the
// global middleware and renders the resulting response. Implements
// http.Handler.
func (t *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	d := &Dispatcher{router: t, invoker: t.requestInvoker()}
	resp := d.Dispatch(NewChain(t.middleware...), req)
	if err := resp.Render(w); err != nil {
		// Headers are already written; nothing useful left to send.
		return
	}
}

// requestInvoker returns the configured invoker, or a default one wired
// to the router's renderer and resolver.
func (t *Router) requestInvoker() Invoker {
	if t.invoker != nil {
		return t.invoker
	}
	return &defaultInvoker{renderer: t.renderer, resolver: t.resolver}
}
