package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost/logger"
)

var lineRegexp = regexp.MustCompile(`^\[([A-Z]+)\] logger/logger_test\.go:\d+ '(.*)'( log_context: (.*))?\n$`)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestColorLoggerLevels(t *testing.T) {
	color.NoColor = true

	for _, tc := range []struct {
		name   string
		level  logger.LogLevel
		logFn  func(l logger.Logger)
		prints bool
		label  string
	}{
		{"debug-at-debug", logger.LogLevelDebug, func(l logger.Logger) { l.Debug("msg", nil) }, true, "DEBUG"},
		{"debug-at-info", logger.LogLevelInfo, func(l logger.Logger) { l.Debug("msg", nil) }, false, ""},
		{"info-at-info", logger.LogLevelInfo, func(l logger.Logger) { l.Info("msg", nil) }, true, "INFO"},
		{"warn-at-error", logger.LogLevelError, func(l logger.Logger) { l.Warn("msg", nil) }, false, ""},
		{"error-at-warn", logger.LogLevelWarn, func(l logger.Logger) { l.Error("msg", nil) }, true, "ERROR"},
		{"fatal-at-fatal", logger.LogLevelFatal, func(l logger.Logger) { l.Fatal("msg", nil) }, true, "FATAL"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(newTestLogger(b)), logger.WithLevel(tc.level))

			// Act
			tc.logFn(l)

			// Assert
			if !tc.prints {
				require.Empty(t, b.String())
				return
			}

			matches := lineRegexp.FindStringSubmatch(b.String())
			require.NotNil(t, matches, b.String())
			require.Equal(t, tc.label, matches[1])
			require.Equal(t, "msg", matches[2])
		})
	}
}

func TestColorLoggerLogContext(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Info("resolved", &logger.LogContext{Location: "/cyk", Error: errors.New("boom")})

	// Assert
	matches := lineRegexp.FindStringSubmatch(b.String())
	require.NotNil(t, matches, b.String())
	require.Equal(t, `{"error":"boom","location":"/cyk"}`, matches[4])
}

func TestColorLoggerCallerOverride(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Info("from elsewhere", &logger.LogContext{Caller: "shell/shell.go:1"})

	// Assert
	require.Equal(t, "[INFO] shell/shell.go:1 'from elsewhere' log_context: {}\n", b.String())
}

func TestNewLogLevel(t *testing.T) {
	require.Equal(t, logger.LogLevelDebug, logger.NewLogLevel("DEBUG"))
	require.Equal(t, logger.LogLevelFatal, logger.NewLogLevel("FATAL"))
	require.Equal(t, logger.LogLevelUnk, logger.NewLogLevel("debug"))
	require.Equal(t, "[WARN]", logger.LogLevelWarn.String())
}

func TestAddSkip(t *testing.T) {
	l := logger.New().(logger.SkipLogger)
	require.Equal(t, 0, l.Skip())
	require.Equal(t, 3, l.AddSkip(3).Skip())
	require.Equal(t, 0, l.Skip())
}
