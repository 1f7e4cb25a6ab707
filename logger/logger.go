package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

// knownFrames is the depth between a caller of a level method and runtime.Caller in ColorLogger.print.
const knownFrames = 2

var modulePathRegex = regexp.MustCompile("signpost/.*$")

// The Logger interface defines the levels logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// NewLogLevel parses the upper-case name of a LogLevel.
func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelDebug:
		return "[DEBUG]"
	case LogLevelInfo:
		return "[INFO]"
	case LogLevelWarn:
		return "[WARN]"
	case LogLevelError:
		return "[ERROR]"
	case LogLevelFatal:
		return "[FATAL]"
	default:
		return "[UNK]"
	}
}

// colorizer returns the fatih/color formatter used for the level.
func (ll LogLevel) colorizer() func(string, ...any) string {
	switch ll {
	case LogLevelDebug:
		return color.WhiteString
	case LogLevelInfo:
		return color.BlueString
	case LogLevelWarn:
		return color.YellowString
	case LogLevelError:
		return color.RedString
	default:
		return color.MagentaString
	}
}

// ColorLogger implements Logger using log, coloring each level.
type ColorLogger struct {
	skip int
	env  string
	l    *log.Logger
	ll   LogLevel
}

// New constructs a Logger.
//
// Logs are printed to os.Stdout by default.
// The default log level is INFO.
// When SENTRY_DSN is set, the returned Logger is a [*SentryLogger].
func New(opts ...OptFn) Logger {
	l := &ColorLogger{
		env: getEnvOrString("ENVIRONMENT", "DEVELOPMENT"),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Debug("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// AddSkip returns a copy of the ColorLogger scrolling back i additional frames
// when logging a message.
func (l *ColorLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *ColorLogger) Debug(msg string, ctx *LogContext) { l.print(LogLevelDebug, msg, ctx) }

// Error writes an error log.
func (l *ColorLogger) Error(msg string, ctx *LogContext) { l.print(LogLevelError, msg, ctx) }

// Fatal writes a fatal log.
// It does not exit the process.
func (l *ColorLogger) Fatal(msg string, ctx *LogContext) { l.print(LogLevelFatal, msg, ctx) }

// Info writes an info log.
func (l *ColorLogger) Info(msg string, ctx *LogContext) { l.print(LogLevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *ColorLogger) Warn(msg string, ctx *LogContext) { l.print(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the ColorLogger.
func (l *ColorLogger) LogLevel() LogLevel { return l.ll }

// Skip returns the current amount of additional frames to scroll back
// when logging a message.
func (l *ColorLogger) Skip() int { return l.skip }

// print writes the message if level is enabled,
// including ctx when it is not nil.
func (l *ColorLogger) print(level LogLevel, msg string, ctx *LogContext) {
	if l.ll > level {
		return
	}

	caller := ""
	if ctx != nil && ctx.Caller != "" {
		caller = ctx.Caller
	} else {
		_, file, line, _ := runtime.Caller(knownFrames + l.skip)
		caller = callSite(file, line)
	}

	out := level.colorizer()("%s %s '%s'", level, caller, msg)
	if ctx == nil {
		l.l.Println(out)
		return
	}

	l.l.Println(out, "log_context:", ctx)
}

// callSite shortens file to its path within the module,
// or to its parent directory and base name otherwise.
//
// e.g.,:
// /home/dev/signpost/shell/shell.go => shell/shell.go
// /home/dev/app/main.go => app/main.go
func callSite(file string, line int) string {
	if match := modulePathRegex.FindString(file); match != "" {
		return fmt.Sprintf(callerTmpl, match[len("signpost/"):], line)
	}

	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}

func immediateFilepath(file string) string {
	dir, base := path.Split(file)
	return path.Join(path.Base(dir), base)
}

func getEnvOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
