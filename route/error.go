package route

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/signpost"
)

var (
	ErrDuplicateName = errors.New("duplicate name")
	ErrDuplicatePath = errors.New("duplicate path")
	ErrMalformedPath = errors.New("malformed path")
	ErrMissingName   = errors.New("missing name")
	ErrMissingView   = errors.New("missing view")
)

// A ConfigError reports the Route that made a table invalid.
//
// errors.Is reports true for both [signpost.ErrBadConfig] and the specific reason,
// e.g. [ErrDuplicateName].
type ConfigError struct {
	// Index is the Route's position in the slice passed to Register.
	Index int
	Path  string
	Name  string
	Err   error
}

func newConfigError(i int, r Route, err error) *ConfigError {
	return &ConfigError{Index: i, Path: r.Path, Name: r.Name, Err: err}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: route %d (path %q, name %q): %s", signpost.ErrBadConfig, e.Index, e.Path, e.Name, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{signpost.ErrBadConfig, e.Err}
}
