// File: logger.go
// Title: Core Logger Implementation
// Description: Logger writes structured entries through a Formatter to an
//              io.Writer. With* methods return configured copies so a base
//              logger can be shared and specialised per component.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-08-16 v0.2.0: Synchronous writes only, LogError maps severity to level

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Logger is a structured logger. It is safe for concurrent use.
type Logger struct {
	mu            sync.RWMutex
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields
	enableCaller  bool
}

// Config configures NewWithConfig.
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer // defaults to os.Stderr
	Name         string
	EnableCaller bool
}

// writeMu serialises writes from all loggers sharing an output.
var writeMu sync.Mutex

// New creates an info-level JSON logger on stderr.
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo})
}

// NewWithConfig creates a logger from config.
func NewWithConfig(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        out,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
	}
}

// WithLevel returns a copy logging at level and above.
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithOutput returns a copy writing to w.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	return c
}

// WithName returns a copy with a component name.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key=value to every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy that adds fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.contextFields[k] = v
	}
	return c
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields...) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }
func (l *Logger) Info(message string, fields ...Fields) { l.log(LevelInfo, message, nil, fields...) }
func (l *Logger) Warn(message string, fields ...Fields) { l.log(LevelWarn, message, nil, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }

// Fatal logs at fatal level and exits the process with status 1.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs message at error level with err attached.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs message at warn level with err attached.
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. Foundation errors
// contribute their code, operation and details as fields; other errors are
// logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}
	l.log(levelForSeverity(e.Severity()), err.Error(), nil, fields)
}

// StartTimer starts a timer that logs the operation's duration when stopped.
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether messages at level are written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the minimum level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel changes the minimum level in place.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.logEntry(level, message, err, 0, fields...)
}

// logDuration is log with a measured duration; it keeps the same call depth
// so caller information points at user code.
func (l *Logger) logDuration(level Level, message string, err error, dur time.Duration, fields ...Fields) {
	l.logEntry(level, message, err, dur, fields...)
}

func (l *Logger) logEntry(level Level, message string, err error, dur time.Duration, fields ...Fields) {
	l.mu.RLock()
	if !level.ShouldLog(l.level) {
		l.mu.RUnlock()
		return
	}
	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	entry.Duration = dur
	entry.add(l.contextFields)
	formatter, output, withCaller := l.formatter, l.output, l.enableCaller
	l.mu.RUnlock()

	entry.add(fields...)
	if withCaller {
		entry.Caller = caller(4)
	}

	line, ferr := formatter.Format(entry)
	if ferr != nil {
		return
	}
	writeMu.Lock()
	_, _ = output.Write(line)
	writeMu.Unlock()
}

// caller reports the frame skip levels above itself.
func caller(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndex(function, "."); i >= 0 {
			function = function[i+1:]
		}
	}
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	return &CallerInfo{Function: function, File: file, Line: line}
}

func (l *Logger) clone() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: make(Fields, len(l.contextFields)),
		enableCaller:  l.enableCaller,
	}
	for k, v := range l.contextFields {
		c.contextFields[k] = v
	}
	return c
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the package-level logger.
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }
func Info(message string, fields ...Fields) { GetDefault().Info(message, fields...) }
func Warn(message string, fields ...Fields) { GetDefault().Warn(message, fields...) }
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
