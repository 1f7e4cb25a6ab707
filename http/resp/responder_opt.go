package resp

import (
	"io/fs"

	"github.com/xy-planning-network/signpost/logger"
)

// A ResponderOptFn configures a *Responder when constructing one.
type ResponderOptFn func(*Responder)

// WithEntry sets the entry document Responder.Entry serves,
// found at name in files, e.g. index.html in the client's build output.
func WithEntry(files fs.FS, name string) ResponderOptFn {
	return func(d *Responder) {
		d.entry.files = files
		d.entry.name = name
	}
}

// WithLogger sets the logger.Logger the Responder logs errors with.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}
