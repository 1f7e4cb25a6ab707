package signpost

import "strings"

var _ Enumerable = Mode("")

// A Mode is the scheme a client uses to reflect the active route in its address.
type Mode string

const (
	// ModeHistory writes real-looking paths, e.g. /cyk.
	//
	// Deep links only work when the host serving the client
	// answers every route path with the client's entry document.
	ModeHistory Mode = "history"

	// ModeHash writes the path into the URL fragment, e.g. /#/cyk.
	// No cooperation from the host is needed.
	ModeHash Mode = "hash"
)

// NewMode casts val into a Mode, ignoring case and surrounding whitespace.
// Unknown values fall back to ModeHistory.
func NewMode(val string) Mode {
	return Mode(strings.ToLower(strings.TrimSpace(val))).normalize()
}

func (m Mode) normalize() Mode {
	switch m {
	case ModeHash:
		return ModeHash
	default:
		return ModeHistory
	}
}

func (m Mode) String() string { return string(m) }

func (m Mode) Valid() error {
	switch m {
	case ModeHistory, ModeHash:
		return nil
	default:
		return ErrNotValid
	}
}

func (m Mode) IsHash() bool { return m == ModeHash }

func (m Mode) IsHistory() bool { return m == ModeHistory }
