// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-16 v0.2.0: Severity mapping tests

package log

import (
	"testing"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("ParseLevel() error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidConfig)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	for _, l := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		back, err := ParseLevel(l.String())
		if err != nil || back != l {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", l.String(), back, err, l)
		}
	}
	if got := Level(42).String(); got != "unknown" {
		t.Errorf("Level(42).String() = %q, want unknown", got)
	}
}

func TestLevel_ShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelWarn) {
		t.Error("error should pass a warn filter")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not pass an info filter")
	}
}

func TestLevelForSeverity(t *testing.T) {
	tests := []struct {
		severity mdwerror.Severity
		want     Level
	}{
		{mdwerror.SeverityLow, LevelInfo},
		{mdwerror.SeverityMedium, LevelWarn},
		{mdwerror.SeverityHigh, LevelError},
		{mdwerror.SeverityCritical, LevelError},
	}

	for _, tt := range tests {
		if got := levelForSeverity(tt.severity); got != tt.want {
			t.Errorf("levelForSeverity(%v) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}
