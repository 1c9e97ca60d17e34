// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     logging
// Description: Builds foundation loggers from the CLI configuration and
//              offers a key/value front end for them
// Author:      Mike Stoffels
// Created:     2025-08-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/gregor/foundation/core/log"
)

// LoggerConfig is the logging part of the CLI configuration in raw form.
// Level and Format are parsed leniently: an unknown level means info and an
// unknown format means text.
type LoggerConfig struct {
	Component string
	Level     string
	Format    string

	// Output defaults to stderr
	Output io.Writer

	// Every line is also copied to these writers
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig is what the CLI uses before a config file is read:
// warnings and errors only, as text.
func DefaultLoggerConfig(component string) LoggerConfig {
	return LoggerConfig{Component: component, Level: "warn", Format: "text"}
}

func (c LoggerConfig) level() mdwlog.Level {
	if lvl, err := mdwlog.ParseLevel(c.Level); err == nil {
		return lvl
	}
	return mdwlog.LevelInfo
}

func (c LoggerConfig) format() mdwlog.Format {
	if c.Format == "" {
		return mdwlog.FormatText
	}
	if f, err := mdwlog.ParseFormat(c.Format); err == nil {
		return f
	}
	return mdwlog.FormatText
}

func (c LoggerConfig) writer() io.Writer {
	w := c.Output
	if w == nil {
		w = os.Stderr
	}
	if len(c.AdditionalOutputs) == 0 {
		return w
	}
	return io.MultiWriter(append([]io.Writer{w}, c.AdditionalOutputs...)...)
}

// NewLogger builds a foundation logger. Caller positions are recorded at
// debug level and below.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	lvl := cfg.level()
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        lvl,
		Format:       cfg.format(),
		Output:       cfg.writer(),
		Name:         cfg.Component,
		EnableCaller: lvl <= mdwlog.LevelDebug,
	})
}

// NewSimpleLogger is NewLogger(DefaultLoggerConfig(component)).
func NewSimpleLogger(component string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(component))
}

// Logger takes alternating keys and values instead of mdwlog.Fields:
//
//	log.Info("mark added", "id", id, "label", label)
type Logger struct {
	*mdwlog.Logger
	name string
}

// New is Wrap over a default logger.
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap names l's output after component name.
func Wrap(l *mdwlog.Logger, name string) *Logger {
	return &Logger{Logger: l.WithName(name), name: name}
}

func (l *Logger) Name() string { return l.name }

func (l *Logger) Debug(msg string, kv ...interface{}) { l.Logger.Debug(msg, toFields(kv...)) }
func (l *Logger) Info(msg string, kv ...interface{}) { l.Logger.Info(msg, toFields(kv...)) }
func (l *Logger) Warn(msg string, kv ...interface{}) { l.Logger.Warn(msg, toFields(kv...)) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.Logger.Error(msg, toFields(kv...)) }

// toFields pairs up kv. Pairs whose key is not a string are skipped, as is
// a trailing key without a value.
func toFields(kv ...interface{}) mdwlog.Fields {
	if len(kv) == 0 {
		return nil
	}
	fields := make(mdwlog.Fields, len(kv)/2)
	for ; len(kv) >= 2; kv = kv[2:] {
		if key, ok := kv[0].(string); ok {
			fields[key] = kv[1]
		}
	}
	return fields
}
