package router

// Params holds the parameter values extracted from a matched path.
//
// When every capture in the pattern maps to a declared {name} token, the
// values are addressable by name. A trailing wildcard capture has no
// name, so patterns containing one deliver their captures positionally
// only.
type Params struct {
	byName  map[string]string
	ordered []string
}

// Get returns the value of the named parameter, or an empty string when
// the parameter is absent.
func (p Params) Get(name string) string {
	return p.byName[name]
}

// Lookup returns the value of the named parameter and whether it was
// present in the matched path. An optional segment that did not
// participate in the match reports false.
func (p Params) Lookup(name string) (string, bool) {
	v, ok := p.byName[name]
	return v, ok
}

// Has reports whether the named parameter was present in the matched path.
func (p Params) Has(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// Positional returns the i-th capture in left-to-right order, or an
// empty string when i is out of range. This is how a wildcard route
// reads its matched tail.
func (p Params) Positional(i int) string {
	if i < 0 || i >= len(p.ordered) {
		return ""
	}
	return p.ordered[i]
}

// Len returns the number of captures, participating or not.
func (p Params) Len() int {
	return len(p.ordered)
}

// Map returns the name to value mapping, or nil for positional-only
// params. The returned map is shared; callers must not mutate it.
func (p Params) Map() map[string]string {
	return p.byName
}
