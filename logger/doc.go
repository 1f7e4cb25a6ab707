/*
Package logger provides leveled logging for signpost by defining the required behavior in [Logger]
and providing an implementation of it with [ColorLogger].

# Overview

A [Logger] emits messages at a [LogLevel] or above.
[ColorLogger] initialized with [LogLevelWarn], for example,
only prints through [*ColorLogger.Warn], [*ColorLogger.Error], and [*ColorLogger.Fatal].

Messages are composed of:
	- timestamp
	- log level
	- call site
	- message
	- log context

For example:
	2026/10/17 15:55:21 [DEBUG] shell/shell.go:143 'navigating' log_context: {"location":"/cyk"}

The log context is a JSON-encoded [*LogContext],
carrying data inessential to the message itself.

# Sentry

When the SENTRY_DSN environment variable is set, [New] wraps the [ColorLogger]
in a [SentryLogger], which also ships errors found in a [LogContext] to Sentry.
*/
package logger
