package router

import (
	"net/http"
	"strings"
	"sync"
)

// Route is one entry in the route table: a method set, a compiled path
// pattern, and the handler (or template) dispatched on match. The value
// returned by Add and the per-method wrappers is the fluent builder for
// route-local configuration; it always refers to this specific route, so
// chained calls cannot accidentally target another registration.
type Route struct {
	path       string
	methods    []string
	handler    Handler
	template   string
	middleware []Middleware
	name       string

	pattern *pattern
	err     error

	// namedRoutes is the owning table's name index, shared so Name can
	// register without reaching back through the table.
	namedRoutes map[string]*Route

	// staticCtx caches the context value for routes without parameters
	// to avoid a heap allocation per request after the first dispatch.
	staticCtx     *routeContext
	staticCtxOnce sync.Once
}

// Name indexes the route under the given id for reverse routing.
// Re-registering an id overwrites the previous entry; naming a route
// never changes its match precedence.
func (r *Route) Name(id string) *Route {
	if r.name != "" {
		delete(r.namedRoutes, r.name)
	}
	r.name = id
	if r.namedRoutes != nil {
		r.namedRoutes[id] = r
	}
	return r
}

// Middleware appends route-local middleware. It runs after any global
// middleware, in the order given, only when this route matches.
func (r *Route) Middleware(specs ...Middleware) *Route {
	r.middleware = append(r.middleware, specs...)
	return r
}

// Err returns the registration error for the route, if any. A route
// whose pattern failed to compile never matches.
func (r *Route) Err() error {
	return r.err
}

// Path returns the original pattern string.
func (r *Route) Path() string {
	return r.path
}

// GetName returns the reverse-routing name, or an empty string for an
// anonymous route.
func (r *Route) GetName() string {
	return r.name
}

// Methods returns the HTTP methods the route accepts; nil means any
// method.
func (r *Route) Methods() []string {
	return r.methods
}

// match tests the route against a request and extracts path parameters.
func (r *Route) match(req *http.Request) (Params, bool) {
	if r.err != nil {
		return Params{}, false
	}
	if len(r.methods) > 0 && !matchInArray(r.methods, strings.ToUpper(req.Method)) {
		return Params{}, false
	}
	return r.pattern.match(req.URL.Path)
}

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}
