package router

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is a declarative route table, typically loaded from a YAML
// file during bootstrap:
//
//	routes:
//	  - path: /users/{id}
//	    methods: [GET]
//	    handler: users.show
//	    name: users.show
//	    middleware: [auth]
//	  - path: /about
//	    template: about
type Manifest struct {
	Routes []ManifestRoute `yaml:"routes"`
}

// ManifestRoute is one declared route. Exactly one of Handler or
// Template must be set. An absent methods list means any method.
type ManifestRoute struct {
	Path       string     `yaml:"path"`
	Methods    methodList `yaml:"methods"`
	Handler    string     `yaml:"handler"`
	Template   string     `yaml:"template"`
	Name       string     `yaml:"name"`
	Middleware []string   `yaml:"middleware"`
}

// methodList accepts either a single method scalar or a sequence:
//
//	methods: GET
//	methods: [GET, POST]
type methodList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *methodList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*m = methodList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*m = methodList(list)
		return nil
	default:
		return fmt.Errorf("router: methods must be a string or a list, got %s", node.Tag)
	}
}

// ManifestRegistry maps the identifiers used in a manifest to concrete
// handlers and middleware.
type ManifestRegistry struct {
	Handlers   map[string]Handler
	Middleware map[string]Middleware
}

// LoadManifest parses a YAML manifest and registers its routes on the
// router. Handler and middleware identifiers are resolved through the
// registry; an unresolved identifier or malformed pattern aborts the
// load with an error. Routes registered before the failing entry remain
// registered.
func (t *Router) LoadManifest(data []byte, reg ManifestRegistry) error {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("router: parse manifest: %w", err)
	}

	for i, mr := range m.Routes {
		if mr.Path == "" {
			return fmt.Errorf("router: manifest route %d: path is required", i)
		}
		if mr.Handler != "" && mr.Template != "" {
			return fmt.Errorf("router: manifest route %q: handler and template are mutually exclusive", mr.Path)
		}
		if mr.Handler == "" && mr.Template == "" {
			return fmt.Errorf("router: manifest route %q: one of handler or template is required", mr.Path)
		}

		var route *Route
		if mr.Template != "" {
			route = t.Template(mr.Path, mr.Template)
		} else {
			h, ok := reg.Handlers[mr.Handler]
			if !ok {
				return fmt.Errorf("router: manifest route %q: unknown handler %q", mr.Path, mr.Handler)
			}
			route = t.Add(mr.Path, []string(mr.Methods), h)
		}
		if err := route.Err(); err != nil {
			return fmt.Errorf("router: manifest route %q: %w", mr.Path, err)
		}

		for _, id := range mr.Middleware {
			mw, ok := reg.Middleware[id]
			if !ok {
				return fmt.Errorf("router: manifest route %q: unknown middleware %q", mr.Path, id)
			}
			route.Middleware(mw)
		}

		if mr.Name != "" {
			route.Name(mr.Name)
		}
	}

	return nil
}
