package router

import "net/http"

// Middleware inspects a request before the handler runs. Returning a
// non-nil Response short-circuits dispatch with that response. Returning
// a non-nil *http.Request replaces the request seen by subsequent
// middleware and the handler (used to attach context values); returning
// nil keeps the current request.
type Middleware func(r *http.Request) (*http.Request, Response)

// Chain is an ordered queue of middleware run once per request. A Chain
// must not be shared across concurrent requests: Queue mutates it, and
// the dispatcher appends route-local middleware at match time.
type Chain struct {
	queued []Middleware
}

// NewChain creates a chain pre-seeded with the given middleware.
func NewChain(specs ...Middleware) *Chain {
	c := &Chain{}
	c.Queue(specs...)
	return c
}

// Queue appends middleware to the pending run.
func (c *Chain) Queue(specs ...Middleware) {
	c.queued = append(c.queued, specs...)
}

// Len returns the number of queued middleware.
func (c *Chain) Len() int {
	return len(c.queued)
}

// Process runs all queued middleware in order. It returns the first
// short-circuit response, or nil if every middleware passed through.
// The returned request carries any replacements made along the way.
func (c *Chain) Process(r *http.Request) (*http.Request, Response) {
	for _, mw := range c.queued {
		next, resp := mw(r)
		if resp != nil {
			return r, resp
		}
		if next != nil {
			r = next
		}
	}
	return r, nil
}
