package router

import "net/http"

// Dispatcher coordinates one request's journey through the route table:
// find the first matching route, merge its middleware into the chain,
// run the chain, and invoke the resolved handler.
type Dispatcher struct {
	router  *Router
	invoker Invoker
}

// NewDispatcher returns a dispatcher over the given table. A nil invoker
// falls back to the router's configured one.
func NewDispatcher(t *Router, inv Invoker) *Dispatcher {
	if inv == nil {
		inv = t.requestInvoker()
	}
	return &Dispatcher{router: t, invoker: inv}
}

// Dispatch matches the request against the table in registration order
// and produces a response.
//
// On the first match, the route's local middleware is queued onto the
// chain after whatever is already there, the chain runs, and a
// short-circuit response is returned as-is without invoking the handler.
// Otherwise the handler (or the synthesized template directive) goes
// through the invoker with the extracted params. When no route matches,
// the 404 fallback is returned; an invoker failure becomes a plain 500.
//
// The chain must be private to this request; Queue mutates it.
func (d *Dispatcher) Dispatch(chain *Chain, req *http.Request) Response {
	for _, route := range d.router.routes {
		params, ok := route.match(req)
		if !ok {
			continue
		}

		req = setRouteContext(req, route, params)

		chain.Queue(route.middleware...)
		req, resp := chain.Process(req)
		if resp != nil {
			return resp
		}

		h := route.handler
		if h == nil && route.template != "" {
			h = templateDirective{name: route.template}
		}

		out, err := d.invoker.Call(h, params, req)
		if err != nil {
			return Text(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		if out == nil {
			out = Text(http.StatusOK, "")
		}
		return out
	}

	return NotFound()
}
