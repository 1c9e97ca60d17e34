// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs one line with its duration
//              when it ends.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-08-16 v0.2.0: Reduced to Stop, StopWithError and Cancel
// - 2025-08-21 v0.3.0: Single finish path; operation is a regular field

package log

import (
	"time"
)

// Timer measures one operation, e.g. a timeline query. Create it with
// Logger.StartTimer; only the first Stop, StopWithError or Cancel counts.
type Timer struct {
	logger *Logger
	op     string
	level  Level
	fields Fields
	clock  func() time.Time
	begin  time.Time
	done   bool
}

// NewTimer starts timing op on logger. Success is logged at debug level.
func NewTimer(logger *Logger, op string) *Timer {
	t := &Timer{logger: logger, op: op, level: LevelDebug, clock: time.Now}
	t.fields = Fields{"operation": op}
	t.begin = t.clock()
	return t
}

// WithLevel changes the level of the success line.
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches key=value to the final line.
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed is the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return t.clock().Sub(t.begin)
}

// Stop logs "<op> completed" and returns the elapsed time, or 0 when the
// timer had already ended.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, "completed", nil)
}

// StopWithError logs "<op> failed" at error level with err attached. A nil
// err is a Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	return t.finish(LevelError, "failed", err)
}

// Cancel ends the timer silently.
func (t *Timer) Cancel() {
	t.done = true
}

func (t *Timer) finish(level Level, outcome string, err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := t.Elapsed()
	t.logger.logDuration(level, t.op+" "+outcome, err, elapsed, t.fields)
	return elapsed
}
