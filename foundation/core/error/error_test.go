// File: error_test.go
// Title: Error Module Tests
// Description: Tests for construction, wrapping, code lookup through chains,
//              details, formatting and JSON output.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-03 v0.2.0: Chain-aware code lookup tests
// - 2025-08-21 v0.3.0: Ordered details, %+v output, pinned severity

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	err := New("month 13 does not exist")

	if got := err.Error(); got != "month 13 does not exist" {
		t.Errorf("Error() = %q", got)
	}
	if err.Code() != CodeUnknown || err.Severity() != SeverityMedium {
		t.Errorf("code/severity = %v/%v, want UNKNOWN/medium", err.Code(), err.Severity())
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
	if got := Newf("day %d of %s", 31, "April").Error(); got != "day 31 of April" {
		t.Errorf("Newf() = %q", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Fatal("Wrap(nil) must be nil")
	}

	plain := Wrap(errors.New("disk full"), "saving mark")
	if plain.Error() != "saving mark: disk full" {
		t.Errorf("Error() = %q", plain.Error())
	}
	if plain.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want UNKNOWN", plain.Code())
	}

	inner := New("day out of range").
		WithCode(CodeInvalidDate).
		WithDetail("day", 30)
	outer := Wrap(inner, "cannot parse 2023-02-30").WithDetail("input", "2023-02-30")

	if outer.Code() != CodeInvalidDate || outer.Severity() != SeverityLow {
		t.Errorf("inherited code/severity = %v/%v", outer.Code(), outer.Severity())
	}
	if got := outer.Details(); got["day"] != 30 || got["input"] != "2023-02-30" {
		t.Errorf("Details() = %v", got)
	}
	if _, ok := inner.Details()["input"]; ok {
		t.Error("details added to the wrapper leaked into the cause")
	}
}

func TestChain(t *testing.T) {
	root := errors.New("no such zone")
	mid := Wrap(root, "resolving CST")
	top := Wrap(mid, "loading config")

	if top.Error() != "loading config: resolving CST: no such zone" {
		t.Errorf("Error() = %q", top.Error())
	}
	if !errors.Is(top, mid) || !errors.Is(top, root) {
		t.Error("errors.Is must see every link")
	}
	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}
	if New("alone").RootCause().Error() != "alone" {
		t.Error("RootCause() of an unwrapped error is itself")
	}
}

func TestSeverityFollowsCode(t *testing.T) {
	err := New("x").WithCode(CodeParseError)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	err.WithCode(CodeDatabaseError)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() after recode = %v, want high", err.Severity())
	}

	pinned := New("x").WithSeverity(SeverityCritical).WithCode(CodeParseError)
	if pinned.Severity() != SeverityCritical {
		t.Errorf("pinned Severity() = %v, want critical", pinned.Severity())
	}
	if Wrap(pinned, "outer").WithCode(CodeNotFound).Severity() != SeverityCritical {
		t.Error("a pinned severity survives wrapping")
	}
}

func TestDetailsOrderAndReplace(t *testing.T) {
	err := New("bad date").
		WithDetail("year", 2023).
		WithDetail("month", 2).
		WithDetail("day", 29).
		WithDetail("month", 3)

	var keys []string
	for _, d := range err.DetailList() {
		keys = append(keys, d.Key)
	}
	if strings.Join(keys, ",") != "year,month,day" {
		t.Errorf("keys = %v, want year,month,day", keys)
	}
	if err.Details()["month"] != 3 {
		t.Errorf("month = %v, want 3", err.Details()["month"])
	}

	m := err.Details()
	m["year"] = 1999
	if err.Details()["year"] != 2023 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", New("x").WithCode(CodeInvalidTime), CodeInvalidTime, true},
		{"different code", New("x").WithCode(CodeInvalidTime), CodeInvalidDate, false},
		{"inner code behind a parse error",
			Wrap(New("day").WithCode(CodeInvalidDate), "parse").WithCode(CodeParseError),
			CodeInvalidDate, true},
		{"through fmt.Errorf",
			fmt.Errorf("loading: %w", New("zone").WithCode(CodeInvalidTimezone)),
			CodeInvalidTimezone, true},
		{"foreign error", errors.New("x"), CodeUnknown, false},
		{"nil", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     Code
		wantSeverity Severity
	}{
		{"structured", New("x").WithCode(CodeParseError), CodeParseError, SeverityLow},
		{"through fmt.Errorf", fmt.Errorf("ctx: %w", New("x").WithCode(CodeDatabaseError)), CodeDatabaseError, SeverityHigh},
		{"outermost wins", Wrap(New("x").WithCode(CodeInvalidDate), "y").WithCode(CodeParseError), CodeParseError, SeverityLow},
		{"foreign", errors.New("x"), CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
			if got := GetSeverity(tt.err); got != tt.wantSeverity {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.wantSeverity)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	err := Wrap(errors.New("unexpected 'x'"), "cannot parse time").
		WithCode(CodeParseError).
		WithOperation("datetime.ParseTime").
		WithDetail("input", "9:x0")

	if got := fmt.Sprintf("%v|%s", err, err); got != "cannot parse time: unexpected 'x'|cannot parse time: unexpected 'x'" {
		t.Errorf("%%v|%%s = %q", got)
	}
	if got := fmt.Sprintf("%q", err); got != `"cannot parse time: unexpected 'x'"` {
		t.Errorf("%%q = %s", got)
	}

	verbose := fmt.Sprintf("%+v", err)
	for _, want := range []string{
		"cannot parse time: unexpected 'x'\n",
		"  code: PARSE_ERROR (low)",
		"  operation: datetime.ParseTime",
		"  input: 9:x0",
		"TestFormat",
	} {
		if !strings.Contains(verbose, want) {
			t.Errorf("%%+v missing %q:\n%s", want, verbose)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("no such zone"), "bad default zone").
		WithCode(CodeInvalidTimezone).
		WithDetail("name", "Nowhere")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}
	var got struct {
		Code     string            `json:"code"`
		Severity string            `json:"severity"`
		Message  string            `json:"message"`
		Details  map[string]string `json:"details"`
		Cause    string            `json:"cause"`
	}
	if jerr := json.Unmarshal(data, &got); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if got.Code != "INVALID_TIMEZONE" || got.Severity != "low" || got.Message != "bad default zone" {
		t.Errorf("decoded = %+v", got)
	}
	if got.Details["name"] != "Nowhere" || got.Cause != "no such zone" {
		t.Errorf("details/cause = %v/%q", got.Details, got.Cause)
	}
	if strings.Contains(string(data), "operation") {
		t.Errorf("empty operation should be omitted: %s", data)
	}
}

func TestStackTrace(t *testing.T) {
	frames := New("here").StackTrace()
	if len(frames) == 0 {
		t.Fatal("StackTrace() is empty")
	}
	if !strings.HasSuffix(frames[0].Function, ".TestStackTrace") {
		t.Errorf("innermost frame = %s, want the caller of New", frames[0].Function)
	}
	if frames[0].Line == 0 || !strings.HasSuffix(frames[0].File, "error_test.go") {
		t.Errorf("frame location = %s:%d", frames[0].File, frames[0].Line)
	}
	if (&Error{}).StackTrace() != nil {
		t.Error("an Error without captured frames has no stack")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapStructured(b *testing.B) {
	inner := New("day out of range").WithCode(CodeInvalidDate).WithDetail("day", 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(inner, "parse")
	}
}
