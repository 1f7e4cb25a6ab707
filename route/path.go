package route

import (
	"fmt"
	"strings"
)

// Normalize reduces a requested path to the form Routes are matched against.
//
// The query string and fragment are dropped, an empty path becomes "/",
// and a single trailing slash is stripped from any path but "/".
// The second return value is false when path is not absolute.
func Normalize(path string) (string, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	if path == "" {
		return root, true
	}

	if !strings.HasPrefix(path, root) {
		return "", false
	}

	return trimSlash(path), true
}

// compile validates a registered path,
// returning it normalized and split into segments.
func compile(path string) (string, []segment, error) {
	if path == "" {
		return "", nil, fmt.Errorf("%w: empty", ErrMalformedPath)
	}

	if !strings.HasPrefix(path, root) {
		return "", nil, fmt.Errorf("%w: %q does not start with %q", ErrMalformedPath, path, root)
	}

	if i := strings.IndexFunc(path, isForbidden); i >= 0 {
		return "", nil, fmt.Errorf("%w: %q contains %q", ErrMalformedPath, path, path[i])
	}

	if strings.Contains(path, "//") {
		return "", nil, fmt.Errorf("%w: %q has an empty segment", ErrMalformedPath, path)
	}

	path = trimSlash(path)
	raw := split(path)
	segs := make([]segment, 0, len(raw))
	seen := make(map[string]bool)
	for _, s := range raw {
		if s == "" {
			return "", nil, fmt.Errorf("%w: %q has an empty segment", ErrMalformedPath, path)
		}

		if !strings.HasPrefix(s, paramMark) {
			segs = append(segs, segment{val: s})
			continue
		}

		name := strings.TrimPrefix(s, paramMark)
		if name == "" {
			return "", nil, fmt.Errorf("%w: %q has an unnamed param", ErrMalformedPath, path)
		}

		if seen[name] {
			return "", nil, fmt.Errorf("%w: %q repeats param %q", ErrMalformedPath, path, name)
		}

		seen[name] = true
		segs = append(segs, segment{val: name, param: true})
	}

	return path, segs, nil
}

func isForbidden(r rune) bool {
	switch r {
	case '?', '#', ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// split breaks a normalized path into its segments.
// The root path has none.
func split(path string) []string {
	if path == root {
		return nil
	}

	return strings.Split(strings.TrimPrefix(path, root), separator)
}

func trimSlash(path string) string {
	if path != root && strings.HasSuffix(path, separator) {
		return path[:len(path)-1]
	}

	return path
}
