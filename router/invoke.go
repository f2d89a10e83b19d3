package router

import (
	"fmt"
	"net/http"
)

// Handler is a reference to the code that produces a response for a
// matched route. It is a closed set: HandlerFunc, Target, and the
// template directive synthesized by Template. The router never inspects
// a handler beyond its variant; resolution belongs to the Invoker.
type Handler interface {
	handlerVariant()
}

// HandlerFunc is an in-process handler called directly by the default
// invoker.
type HandlerFunc func(params Params, r *http.Request) Response

func (HandlerFunc) handlerVariant() {}

// Target names a handler to be resolved externally, typically by a
// dependency injection container: a type (or service) name plus a method
// on it.
type Target struct {
	Name   string
	Method string
}

func (Target) handlerVariant() {}

// templateDirective instructs the invoker to render a view with no
// arguments beyond the route params. Created by Router.Template.
type templateDirective struct {
	name string
}

func (templateDirective) handlerVariant() {}

// Invoker resolves a Handler reference and produces a response.
// Implementations typically wrap a DI container; the default invoker
// covers in-process functions and template rendering.
type Invoker interface {
	Call(h Handler, params Params, r *http.Request) (Response, error)
}

// Renderer renders a named template into a response. Template engines
// are external; this is their boundary.
type Renderer interface {
	Render(name string) (Response, error)
}

// ResolverFunc resolves a Target to an in-process handler. It stands in
// for a DI container in the default invoker.
type ResolverFunc func(t Target) (HandlerFunc, error)

// defaultInvoker dispatches each handler variant: functions are called
// directly, targets go through the resolver, template directives through
// the renderer.
type defaultInvoker struct {
	renderer Renderer
	resolver ResolverFunc
}

func (inv *defaultInvoker) Call(h Handler, params Params, r *http.Request) (Response, error) {
	switch h := h.(type) {
	case HandlerFunc:
		return h(params, r), nil
	case Target:
		if inv.resolver == nil {
			return nil, fmt.Errorf("router: target %s.%s: %w", h.Name, h.Method, ErrNoResolver)
		}
		fn, err := inv.resolver(h)
		if err != nil {
			return nil, fmt.Errorf("router: resolve target %s.%s: %w", h.Name, h.Method, err)
		}
		return fn(params, r), nil
	case templateDirective:
		if inv.renderer == nil {
			return nil, fmt.Errorf("router: template %q: %w", h.name, ErrNoRenderer)
		}
		return inv.renderer.Render(h.name)
	case nil:
		return nil, ErrNilHandler
	default:
		return nil, fmt.Errorf("router: unsupported handler variant %T", h)
	}
}
