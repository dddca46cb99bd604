package logging

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// impl hands every entry at or above its level to each of its appenders. Fields bound with With
// come first in every entry, in the order they were bound.
type impl struct {
	name      string
	level     AtomicLevel
	bound     []zapcore.Field
	appenders []Appender
}

func newLogger(name string, level Level, appenders ...Appender) *impl {
	return &impl{name: name, level: NewAtomicLevelAt(level), appenders: appenders}
}

// derive returns a child sharing the appenders, with a copy of the current level and of the bound fields.
func (imp *impl) derive(name string, extra []zapcore.Field) *impl {
	bound := make([]zapcore.Field, 0, len(imp.bound)+len(extra))
	bound = append(append(bound, imp.bound...), extra...)
	return &impl{
		name:      name,
		level:     NewAtomicLevelAt(imp.level.Get()),
		bound:     bound,
		appenders: imp.appenders,
	}
}

func (imp *impl) With(keysAndValues ...interface{}) Logger {
	return imp.derive(imp.name, toFields(keysAndValues))
}

func (imp *impl) Sublogger(subname string) Logger {
	if imp.name == "" {
		return imp.derive(subname, nil)
	}
	return imp.derive(imp.name+"."+subname, nil)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

func (imp *impl) Sync() error {
	var errs error
	for _, appender := range imp.appenders {
		errs = multierr.Append(errs, appender.Sync())
	}
	return errs
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.write(DEBUG, msg, keysAndValues)
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.write(WARN, msg, keysAndValues)
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.write(ERROR, msg, keysAndValues)
}

func (imp *impl) write(level Level, msg string, keysAndValues []interface{}) {
	if level < imp.level.Get() {
		return
	}

	entry := zapcore.Entry{
		Level:      level.AsZap(),
		Time:       time.Now().UTC(),
		LoggerName: imp.name,
		Message:    msg,
		// callerAt, write and the leveled method sit between runtime.Caller and the caller.
		Caller: callerAt(3),
	}
	fields := imp.bound
	if len(keysAndValues) > 0 {
		fields = append(append(make([]zapcore.Field, 0, len(imp.bound)+len(keysAndValues)/2+1), imp.bound...),
			toFields(keysAndValues)...)
	}

	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// toFields pairs up alternating keys and values. A trailing key with no value is logged with the
// value "unpaired log key".
func toFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		if i+1 == len(keysAndValues) {
			fields = append(fields, zap.String(key, "unpaired log key"))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

func callerAt(skip int) zapcore.EntryCaller {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return zapcore.EntryCaller{}
	}
	caller := zapcore.EntryCaller{Defined: true, PC: pc, File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		caller.Function = fn.Name()
	}
	return caller
}
