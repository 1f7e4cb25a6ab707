package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xy-planning-network/signpost"
)

const (
	HomeKey     = "home"
	CYKKey      = "cyk"
	FSMKey      = "fsm"
	NotFoundKey = "not-found"
)

// A Catalog names the Views a route file can refer to.
// Keys are case-insensitive.
type Catalog map[string]View

// DefaultCatalog constructs a Catalog holding a fresh Home, CYK, FSM, and NotFound.
func DefaultCatalog() Catalog {
	return Catalog{
		HomeKey:     NewHome(),
		CYKKey:      NewCYK(),
		FSMKey:      NewFSM(),
		NotFoundKey: NewNotFound(),
	}
}

// Get retrieves the View stored under key.
func (c Catalog) Get(key string) (View, error) {
	v, ok := c[strings.ToLower(strings.TrimSpace(key))]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: view %q; known views: %s", signpost.ErrNotExist, key, strings.Join(c.Keys(), ", "))
	}

	return v, nil
}

// Keys lists the Catalog's keys in sorted order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// KeyOf returns the key v is stored under.
func (c Catalog) KeyOf(v View) (string, bool) {
	for _, k := range c.Keys() {
		if c[k] == v {
			return k, true
		}
	}

	return "", false
}
