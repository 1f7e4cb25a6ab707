package logger

import "log"

// An OptFn configures a ColorLogger when constructing a new one.
type OptFn func(*ColorLogger)

// WithEnv sets the environment reported alongside events shipped to Sentry.
func WithEnv(env string) OptFn {
	return func(l *ColorLogger) {
		l.env = env
	}
}

// WithLevel sets the lowest LogLevel the ColorLogger prints.
func WithLevel(level LogLevel) OptFn {
	return func(l *ColorLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger the ColorLogger writes through.
func WithLogger(log *log.Logger) OptFn {
	return func(l *ColorLogger) {
		l.l = log
	}
}

// WithSkip sets the number of additional frames in the call stack
// to skip in order to log the file and line number of the calling code.
func WithSkip(skip int) OptFn {
	return func(l *ColorLogger) {
		l.skip = skip
	}
}
