package router

import "errors"

// ErrRouteNotFound is returned by URL when no route is registered under
// the requested name.
var ErrRouteNotFound = errors.New("no route registered under that name")

// ErrNilHandler is returned by the default invoker when a route carries
// neither a handler nor a template.
var ErrNilHandler = errors.New("route has no handler")

// ErrNoRenderer is returned by the default invoker when a template route
// is dispatched without a Renderer configured.
var ErrNoRenderer = errors.New("no template renderer configured")

// ErrNoResolver is returned by the default invoker when a Target handler
// is dispatched without a ResolverFunc configured.
var ErrNoResolver = errors.New("no target resolver configured")
