// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON and text formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-16 v0.2.0: Sorted text fields, error codes in JSON

package log

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "entry stored")
	e.Timestamp = time.Date(2025, 8, 16, 9, 30, 0, 0, time.UTC)
	e.Logger = "timeline"
	e.Fields["label"] = "launch"
	e.Fields["at"] = "2022-01-01"
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"", FormatJSON, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v, wantErr %v", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter()
	got, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "09:30:00 [INF] {timeline} entry stored [at=2022-01-01 label=launch]\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	e := testEntry()
	e.Fields = Fields{}
	e.Error = errors.New("disk full")
	e.Duration = 1500 * time.Millisecond
	f.DisableTimestamp = true
	got, _ = f.Format(e)
	want = "[INF] {timeline} entry stored error=\"disk full\" duration=1.5s\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	e := testEntry()
	e.Error = mdwerror.New("no such entry").WithCode(mdwerror.CodeNotFound)
	e.Duration = 2 * time.Millisecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if out[len(out)-1] != '\n' {
		t.Error("Format() should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("Format() produced invalid JSON: %v", err)
	}
	checks := map[string]interface{}{
		"level":       "info",
		"message":     "entry stored",
		"logger":      "timeline",
		"label":       "launch",
		"error":       "no such entry",
		"error_code":  "NOT_FOUND",
		"duration_ms": 2.0,
		"timestamp":   "2025-08-16T09:30:00Z",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("Format()[%q] = %v, want %v", k, data[k], want)
		}
	}
}
