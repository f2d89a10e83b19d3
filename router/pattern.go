package router

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// segmentExpr is the expression a required or optional segment value must
// satisfy: one or more letters, digits, underscores, or hyphens.
const segmentExpr = `[A-Za-z0-9_-]+`

// paramNameRe validates the name inside a {name} or {name?} token.
var paramNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// pattern is a compiled path pattern.
type pattern struct {
	// template is the original pattern string.
	template string
	// regexp is the compiled expression, anchored at both ends.
	regexp *regexp.Regexp
	// names are the declared parameter names in left-to-right token order.
	names []string
	// wildcard reports whether the pattern ends with a * tail capture.
	wildcard bool
}

// compilePattern transforms a path pattern into an anchored regular
// expression. Substitution precedence: an optional segment together with
// its preceding slash becomes one optional group (absent means no slash
// at all), a required segment becomes a mandatory group, remaining text
// is matched literally, and a trailing * becomes a greedy tail capture.
func compilePattern(tpl string) (*pattern, error) {
	idxs, err := braceIndices(tpl)
	if err != nil {
		return nil, err
	}

	var (
		expr  bytes.Buffer
		names []string
		end   int
	)

	expr.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		raw := tpl[end:idxs[i]]
		token := tpl[idxs[i]+1 : idxs[i+1]-1]
		end = idxs[i+1]

		optional := strings.HasSuffix(token, "?")
		name := strings.TrimSuffix(token, "?")
		if !paramNameRe.MatchString(name) {
			return nil, fmt.Errorf("router: invalid parameter name in %q from %q", tpl[idxs[i]:end], tpl)
		}

		switch {
		case optional && strings.HasSuffix(raw, "/"):
			// The slash belongs to the optional group so an absent
			// segment contributes no separator either.
			expr.WriteString(regexp.QuoteMeta(strings.TrimSuffix(raw, "/")))
			fmt.Fprintf(&expr, "(?:/(%s))?", segmentExpr)
		case optional:
			expr.WriteString(regexp.QuoteMeta(raw))
			fmt.Fprintf(&expr, "(%s)?", segmentExpr)
		default:
			expr.WriteString(regexp.QuoteMeta(raw))
			fmt.Fprintf(&expr, "(%s)", segmentExpr)
		}

		// Duplicate names are allowed; when captures are folded into a
		// map the later occurrence wins.
		names = append(names, name)
	}

	raw := tpl[end:]
	wildcard := strings.HasSuffix(raw, "*")
	if wildcard {
		expr.WriteString(regexp.QuoteMeta(strings.TrimSuffix(raw, "*")))
		expr.WriteString("(.*)")
	} else {
		expr.WriteString(regexp.QuoteMeta(raw))
	}

	expr.WriteByte('$')

	reg, err := compileRegexp(expr.String())
	if err != nil {
		return nil, fmt.Errorf("router: pattern %q: %w", tpl, err)
	}

	return &pattern{
		template: tpl,
		regexp:   reg,
		names:    names,
		wildcard: wildcard,
	}, nil
}

// match tests the compiled pattern against a request path and extracts
// parameters. Captures map to declared names positionally; when a
// wildcard leaves the counts unequal, the raw ordered captures are
// delivered instead and no name mapping is built.
func (p *pattern) match(path string) (Params, bool) {
	loc := p.regexp.FindStringSubmatchIndex(path)
	if loc == nil {
		return Params{}, false
	}

	groups := p.regexp.NumSubexp()
	ordered := make([]string, groups)
	present := make([]bool, groups)
	for i := 0; i < groups; i++ {
		start, stop := loc[2*(i+1)], loc[2*(i+1)+1]
		if start >= 0 {
			ordered[i] = path[start:stop]
			present[i] = true
		}
	}

	params := Params{ordered: ordered}

	if len(p.names) == groups {
		byName := make(map[string]string, groups)
		for i, name := range p.names {
			if present[i] {
				byName[name] = ordered[i]
			}
		}
		params.byName = byName
	}

	return params, true
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("router: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("router: unbalanced braces in %q", s)
	}
	return idxs, nil
}
