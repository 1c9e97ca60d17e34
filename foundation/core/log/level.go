// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their names and the level an error severity maps to.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-08-16 v0.2.0: Removed the audit level
// - 2025-08-21 v0.3.0: Name tables replace the switches

package log

import (
	"strings"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Level orders log messages; a logger drops everything below its own level.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal"}
	levelTags  = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "FTL"}
)

func (l Level) valid() bool { return l >= LevelTrace && l <= LevelFatal }

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l]
}

// ShortString is the three-letter tag used by the text formatter.
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelTags[l]
}

// ShouldLog reports whether a message at l passes a minLevel filter.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name or tag in any case, "warning", and the
// empty string for info.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	}
	for i := range levelNames {
		if s == levelNames[i] || s == strings.ToLower(levelTags[i]) {
			return Level(i), nil
		}
	}
	return LevelInfo, mdwerror.Newf("invalid log level: %s", s).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("log.ParseLevel").
		WithDetail("valid", strings.Join(levelNames[:], ", "))
}

// levelForSeverity picks the level LogError writes at: rejected input is
// info, unclassified errors warn, the rest is error.
func levelForSeverity(s mdwerror.Severity) Level {
	switch {
	case s <= mdwerror.SeverityLow:
		return LevelInfo
	case s == mdwerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}
