package router

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// tokenRe matches a {name} or {name?} token in a pattern string.
var tokenRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\??\}`)

// optionalTokenRe matches an unfilled optional token together with its
// preceding slash, mirroring the matcher: an absent optional segment
// contributes no separator.
var optionalTokenRe = regexp.MustCompile(`/?\{[A-Za-z0-9_]+\?\}`)

// URL builds a concrete URL for the route registered under name.
//
// When context is a string-keyed map (any value type), each token whose
// name is a key is replaced with the stringified value; the optionality
// marker is ignored for matching. Any other non-nil context is treated
// as a single scalar that fills every token, which is the convenient
// form for single-parameter routes.
//
// Unfilled optional tokens are stripped along with their preceding
// slash, so the built URL matches the same route when dispatched;
// unfilled required tokens stay in the output literally rather than
// failing. A trailing wildcard marker and trailing slash are trimmed
// from the result.
//
// Returns ErrRouteNotFound when no route carries the given name.
func (t *Router) URL(name string, context any) (string, error) {
	route, ok := t.namedRoutes[name]
	if !ok {
		return "", fmt.Errorf("router: %q: %w", name, ErrRouteNotFound)
	}

	out := route.path

	switch ctx := context.(type) {
	case nil:
	case map[string]string:
		out = replaceNamedTokens(out, func(key string) (string, bool) {
			v, ok := ctx[key]
			return v, ok
		})
	case map[string]any:
		out = replaceNamedTokens(out, func(key string) (string, bool) {
			v, ok := ctx[key]
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%v", v), true
		})
	default:
		if values, ok := stringKeyedMap(context); ok {
			out = replaceNamedTokens(out, func(key string) (string, bool) {
				v, ok := values(key)
				return v, ok
			})
			break
		}
		value := fmt.Sprintf("%v", context)
		out = tokenRe.ReplaceAllLiteralString(out, value)
	}

	out = optionalTokenRe.ReplaceAllLiteralString(out, "")
	out = strings.TrimSuffix(out, "*")
	if out != "/" {
		out = strings.TrimSuffix(out, "/")
	}
	if out == "" {
		out = "/"
	}

	return out, nil
}

// stringKeyedMap returns a lookup over any map with string-kind keys,
// so map[string]int and friends behave like the common map types rather
// than falling into the scalar branch.
func stringKeyedMap(v any) (func(string) (string, bool), bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keyType := rv.Type().Key()
	return func(key string) (string, bool) {
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !mv.IsValid() {
			return "", false
		}
		return fmt.Sprintf("%v", mv.Interface()), true
	}, true
}

// replaceNamedTokens substitutes each token whose name the lookup knows,
// leaving unknown tokens untouched.
func replaceNamedTokens(tpl string, lookup func(string) (string, bool)) string {
	return tokenRe.ReplaceAllStringFunc(tpl, func(tok string) string {
		name := tokenRe.FindStringSubmatch(tok)[1]
		if v, ok := lookup(name); ok {
			return v
		}
		return tok
	})
}
