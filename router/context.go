package router

import (
	"context"
	"net/http"
)

// paramsContextKey is an unexported type for the single context key.
type paramsContextKey struct{}

// ctxKey is the single context key used to store the matched route and
// its params.
var ctxKey = paramsContextKey{}

// routeContext holds the matched route and extracted parameters.
type routeContext struct {
	route  *Route
	params Params
}

// RequestParams returns the parameters extracted for the current
// request. The zero Params is returned outside a dispatched request.
func RequestParams(r *http.Request) Params {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.params
	}
	return Params{}
}

// MatchedRoute returns the route matched for the current request, if
// any. This only works inside the handler of the matched route because
// the match is stored in the request context.
func MatchedRoute(r *http.Request) *Route {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.route
	}
	return nil
}

// WithParams sets the route params for the given request, returning the
// modified request. This is intended for testing handlers in isolation.
func WithParams(r *http.Request, params Params) *http.Request {
	var route *Route
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		route = rc.route
	}
	return setRouteContext(r, route, params)
}

// setRouteContext stores the match in the request context. For routes
// without captures the routeContext is cached on the Route to avoid a
// heap allocation per request after the first dispatch.
func setRouteContext(r *http.Request, route *Route, params Params) *http.Request {
	var rc *routeContext
	if route != nil && params.Len() == 0 {
		route.staticCtxOnce.Do(func() {
			route.staticCtx = &routeContext{route: route}
		})
		rc = route.staticCtx
	} else {
		rc = &routeContext{route: route, params: params}
	}
	ctx := context.WithValue(r.Context(), ctxKey, rc)
	return r.WithContext(ctx)
}
