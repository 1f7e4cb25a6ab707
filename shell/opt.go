package shell

import (
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/view"
)

// An Option configures a Shell when constructing a new one.
type Option func(*Shell)

// WithBase mounts the client under base, e.g. /app.
func WithBase(base string) Option {
	return func(s *Shell) {
		s.base = base
	}
}

// WithFallback sets the View activated when a navigation matches no route.
// Without one, such a navigation changes nothing.
func WithFallback(v view.View) Option {
	return func(s *Shell) {
		s.fallback = v
	}
}

// WithHistory sets the History the Shell reads and writes addresses through.
// The default is a MemoryHistory starting at the base path.
func WithHistory(h History) Option {
	return func(s *Shell) {
		s.history = h
	}
}

// WithLogger sets the logger.Logger the Shell reports navigations to.
func WithLogger(l logger.Logger) Option {
	return func(s *Shell) {
		s.l = l
	}
}

// WithMode sets how the Shell writes addresses.
// The default is [signpost.ModeHistory].
func WithMode(m signpost.Mode) Option {
	return func(s *Shell) {
		s.mode = m
	}
}
