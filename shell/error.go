package shell

import "errors"

var (
	// ErrSuperseded is returned by a navigation a newer navigation replaced before it finished.
	// Nothing the superseded navigation did is kept.
	ErrSuperseded = errors.New("navigation superseded")

	// ErrNoHistory is returned when going back or forward past the ends of the History.
	ErrNoHistory = errors.New("no history entry")
)
