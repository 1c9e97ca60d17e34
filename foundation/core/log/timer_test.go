// File: timer_test.go
// Title: Operation Timer Tests
// Description: Tests for timer completion and failure messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-16 v0.2.0: Deterministic clock in tests

package log

import (
	"errors"
	"testing"
	"time"
)

func fixedTimer(l *Logger, op string, elapsed time.Duration) *Timer {
	tm := l.StartTimer(op)
	begin := tm.begin
	tm.clock = func() time.Time { return begin.Add(elapsed) }
	return tm
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	tm := fixedTimer(logger, "timeline.list", 3*time.Millisecond).WithField("rows", 2)

	if d := tm.Stop(); d != 3*time.Millisecond {
		t.Errorf("Stop() = %v, want 3ms", d)
	}
	if d := tm.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("wrote %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l["message"] != "timeline.list completed" || l["operation"] != "timeline.list" ||
		l["duration_ms"] != 3.0 || l["rows"] != 2.0 || l["level"] != "debug" {
		t.Errorf("Stop() logged %v", l)
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	fixedTimer(logger, "timeline.add", time.Millisecond).StopWithError(errors.New("locked"))
	fixedTimer(logger, "timeline.get", time.Millisecond).StopWithError(nil)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("wrote %d lines, want 1 (debug completion is filtered)", len(lines))
	}
	if lines[0]["level"] != "error" || lines[0]["error"] != "locked" {
		t.Errorf("StopWithError() logged %v", lines[0])
	}
}

func TestTimer_Cancel(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	tm := logger.StartTimer("noop")
	tm.Cancel()
	tm.Stop()
	if buf.Len() != 0 {
		t.Errorf("Cancel() then Stop() wrote %q", buf.String())
	}
}
