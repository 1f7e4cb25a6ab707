package route

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/view"
)

const (
	root      = "/"
	separator = "/"
	paramMark = ":"
)

// A Route binds a path to a named view.
type Route struct {
	// Path is an absolute path, e.g. /cyk.
	// Segments starting with ":" capture a value, e.g. /fsm/:machine.
	Path string

	// Name identifies the Route for reverse lookups and diagnostics.
	// It is unique within a Table.
	Name string

	// View is activated when the Route is navigated to.
	// The application owns it; a Table only refers to it.
	View view.View
}

// String formats the Route for diagnostics.
func (r Route) String() string {
	vn := "<nil>"
	if r.View != nil {
		vn = r.View.Name()
	}

	return fmt.Sprintf("%s %s (%s)", r.Path, r.Name, vn)
}

// A Match is the Route a requested path resolved to.
type Match struct {
	Route

	// Params holds the values captured by the Route's ":" segments.
	Params signpost.Params

	// Requested is the normalized path that was resolved.
	Requested string
}

// A Table is an ordered set of Routes.
// Use Register to construct one.
type Table struct {
	entries []entry
	byName  map[string]int
}

// An entry is a registered Route.
// Its Path is kept as written; segs hold the normalized form.
type entry struct {
	Route
	segs     []segment
	trailing bool
}

type segment struct {
	val   string
	param bool
}

// Register validates routes and constructs a Table from them,
// preserving their order.
//
// Register returns a [*ConfigError] for the first Route that
// has no name, shares a name or path with a Route before it,
// has a malformed path, or has no view.
func Register(routes []Route) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(routes)),
		byName:  make(map[string]int, len(routes)),
	}
	paths := make(map[string]string, len(routes))

	for i, r := range routes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, newConfigError(i, r, ErrMissingName)
		}

		if _, ok := t.byName[r.Name]; ok {
			return nil, newConfigError(i, r, ErrDuplicateName)
		}

		if r.View == nil {
			return nil, newConfigError(i, r, ErrMissingView)
		}

		p, segs, err := compile(r.Path)
		if err != nil {
			return nil, newConfigError(i, r, err)
		}

		if other, ok := paths[p]; ok {
			return nil, newConfigError(i, r, fmt.Errorf("%w: already registered by %s", ErrDuplicatePath, other))
		}

		paths[p] = r.Name
		t.byName[r.Name] = len(t.entries)
		t.entries = append(t.entries, entry{Route: r, segs: segs, trailing: p != r.Path})
	}

	return t, nil
}

// MustRegister is like Register but panics if routes are not valid.
// It is meant for tables declared in code.
func MustRegister(routes []Route) *Table {
	t, err := Register(routes)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of Routes in the Table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Routes returns a copy of the Routes in registration order.
func (t *Table) Routes() []Route {
	routes := make([]Route, 0, t.Len())
	if t == nil {
		return routes
	}

	for _, e := range t.entries {
		routes = append(routes, e.Route)
	}

	return routes
}

// Lookup retrieves the Route registered under name.
func (t *Table) Lookup(name string) (Route, bool) {
	if t == nil {
		return Route{}, false
	}

	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}

	return t.entries[i].Route, true
}

// Resolve returns the first Route, in registration order, matching path.
// The second return value is false when no Route matches.
func (t *Table) Resolve(path string) (Route, bool) {
	m, ok := t.Match(path)
	return m.Route, ok
}

// Match is like Resolve but also returns the values captured by ":" segments.
//
// Any query string or fragment in path is ignored,
// an empty path is the root path,
// and a single trailing slash is stripped from any other path.
func (t *Table) Match(path string) (Match, bool) {
	if t == nil {
		return Match{}, false
	}

	requested, ok := Normalize(path)
	if !ok {
		return Match{}, false
	}

	reqSegs := split(requested)
	for _, e := range t.entries {
		params, ok := e.match(reqSegs)
		if !ok {
			continue
		}

		return Match{Route: e.Route, Params: params, Requested: requested}, true
	}

	return Match{Requested: requested}, false
}

// PathFor returns the path registered under name, as it was written.
// The second return value is false when no Route has that name.
func (t *Table) PathFor(name string) (string, bool) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", false
	}

	return r.Path, true
}

// Build returns the path registered under name,
// filling each ":" segment with its value in params.
// A trailing slash the path was registered with is kept.
//
// Build returns an error wrapping [signpost.ErrNotExist] for an unknown name
// and one wrapping [signpost.ErrMissingData] when params lacks a value.
func (t *Table) Build(name string, params signpost.Params) (string, error) {
	if t == nil {
		return "", fmt.Errorf("%w: route %q", signpost.ErrNotExist, name)
	}

	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: route %q", signpost.ErrNotExist, name)
	}

	e := t.entries[i]
	if len(e.segs) == 0 {
		return root, nil
	}

	var b strings.Builder
	for _, s := range e.segs {
		b.WriteString(separator)
		if !s.param {
			b.WriteString(s.val)
			continue
		}

		v := params[s.val]
		if v == "" {
			return "", fmt.Errorf("%w: route %q needs param %q", signpost.ErrMissingData, name, s.val)
		}

		b.WriteString(url.PathEscape(v))
	}

	if e.trailing {
		b.WriteString(separator)
	}

	return b.String(), nil
}

// match compares the entry's segments with the requested ones,
// capturing parameter values.
func (e entry) match(reqSegs []string) (signpost.Params, bool) {
	if len(e.segs) != len(reqSegs) {
		return nil, false
	}

	var params signpost.Params
	for i, s := range e.segs {
		if !s.param {
			if s.val != reqSegs[i] {
				return nil, false
			}
			continue
		}

		if reqSegs[i] == "" {
			return nil, false
		}

		val, err := url.PathUnescape(reqSegs[i])
		if err != nil {
			val = reqSegs[i]
		}

		if params == nil {
			params = make(signpost.Params)
		}
		params[s.val] = val
	}

	return params, true
}
