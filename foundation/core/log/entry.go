// File: entry.go
// Title: Log Entry Structure
// Description: A single log record and the Fields type attached to it.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-16 v0.2.0: Removed request/user/correlation ids
// - 2025-08-21 v0.3.0: Dropped unused field helpers; entries collect fields
//                      through add

package log

import (
	"time"
)

// Entry is one log record as handed to a Formatter.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Message   string
	Error     error
	Duration  time.Duration
	Fields    Fields
	Caller    *CallerInfo
}

// CallerInfo is the source position of the logging call.
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields is structured key/value data. Later sets win on key collisions.
type Fields map[string]interface{}

// Field is shorthand for a one-entry Fields.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// NewEntry stamps a record with the current wall-clock time.
func NewEntry(level Level, message string) *Entry {
	return &Entry{Timestamp: time.Now(), Level: level, Message: message, Fields: Fields{}}
}

func (e *Entry) add(sets ...Fields) {
	for _, set := range sets {
		for k, v := range set {
			e.Fields[k] = v
		}
	}
}
