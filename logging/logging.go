// Package logging contains the leveled, structured logger used by the rotation tools.
package logging

import (
	"io"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger writes key/value structured entries at a level. Loggers derived with Sublogger or With
// start at their parent's level and can be changed independently of it.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// With returns a logger which adds the given key/value pairs to every entry.
	With(keysAndValues ...interface{}) Logger
	// Sublogger returns a logger named "<name>.<subname>".
	Sublogger(subname string) Logger

	SetLevel(level Level)
	GetLevel() Level
	Sync() error
}

// NewWriterLogger returns a logger that writes entries at or above level to writer, with times in UTC.
func NewWriterLogger(name string, level Level, writer io.Writer) Logger {
	return newLogger(name, level, NewWriterAppender(writer))
}

// NewObservedTestLogger returns a Debug+ logger that writes through tb and also records every entry
// in the returned observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	return newLogger("", DEBUG, NewTestAppender(tb), observerCore), observedLogs
}
