// File: error.go
// Title: Core Error Implementation
// Description: The Error type: a message with a code, a severity, the operation
//              that failed, ordered details and the call stack at creation.
//              Errors chain through Unwrap so errors.Is and errors.As see the
//              cause, and %+v prints the full record.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2025-08-03 v0.2.0: Chain-aware HasCode/GetCode, dropped request/user metadata
// - 2025-08-21 v0.3.0: Ordered details, lazy stack frames, fmt.Formatter instead
//                      of String, removed timestamp and free-form context

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
)

const maxFrames = 16

// Error is the structured error returned by gregor packages.
type Error struct {
	message   string
	operation string
	code      Code
	severity  Severity
	pinned    bool // severity set by WithSeverity; WithCode leaves it alone
	details   []Detail
	cause     error
	pcs       []uintptr
}

// Detail is one key/value pair attached to an Error.
type Detail struct {
	Key   string
	Value any
}

// StackFrame is a resolved entry of the creation stack.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New returns an Error with code CodeUnknown.
func New(message string) *Error {
	return &Error{message: message, code: CodeUnknown, severity: SeverityMedium, pcs: callers()}
}

// Newf is New with a fmt format.
func Newf(format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), code: CodeUnknown, severity: SeverityMedium, pcs: callers()}
}

// Wrap puts message in front of err. When err is or wraps an *Error, the
// new error starts with its code, severity and details. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	e := &Error{message: message, cause: err, code: CodeUnknown, severity: SeverityMedium, pcs: callers()}
	var inner *Error
	if errors.As(err, &inner) {
		e.code, e.severity, e.pinned = inner.code, inner.severity, inner.pinned
		e.details = append([]Detail(nil), inner.details...)
	}
	return e
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// WithCode sets the code and, unless WithSeverity pinned it, the severity
// registered for the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.pinned {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity overrides the severity derived from the code.
func (e *Error) WithSeverity(s Severity) *Error {
	e.severity = s
	e.pinned = true
	return e
}

// WithDetail records key=value. Setting a key again replaces its value in place.
func (e *Error) WithDetail(key string, value any) *Error {
	for i := range e.details {
		if e.details[i].Key == key {
			e.details[i].Value = value
			return e
		}
	}
	e.details = append(e.details, Detail{Key: key, Value: value})
	return e
}

// WithOperation names the function that failed, e.g. "datetime.ParseDate".
func (e *Error) WithOperation(op string) *Error {
	e.operation = op
	return e
}

func (e *Error) Message() string { return e.message }
func (e *Error) Code() Code { return e.code }
func (e *Error) Severity() Severity { return e.severity }
func (e *Error) Operation() string { return e.operation }
func (e *Error) DetailList() []Detail { return append([]Detail(nil), e.details...) }

// Details returns the details as a fresh map.
func (e *Error) Details() map[string]any {
	m := make(map[string]any, len(e.details))
	for _, d := range e.details {
		m[d.Key] = d.Value
	}
	return m
}

// StackTrace resolves the frames captured when e was created, innermost first.
func (e *Error) StackTrace() []StackFrame {
	if len(e.pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.pcs)
	out := make([]StackFrame, 0, len(e.pcs))
	for {
		f, more := frames.Next()
		out = append(out, StackFrame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			return out
		}
	}
}

// RootCause follows Unwrap to the end of the chain.
func (e *Error) RootCause() error {
	var err error = e
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Format implements fmt.Formatter. %s and %v print Error(); %+v adds the
// code, severity, operation, details and stack, one per line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.writeVerbose(s)
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *Error) writeVerbose(w io.Writer) {
	fmt.Fprintf(w, "%s\n  code: %s (%s)", e.Error(), e.code, e.severity)
	if e.operation != "" {
		fmt.Fprintf(w, "\n  operation: %s", e.operation)
	}
	for _, d := range e.details {
		fmt.Fprintf(w, "\n  %s: %v", d.Key, d.Value)
	}
	for _, f := range e.StackTrace() {
		fmt.Fprintf(w, "\n    at %s (%s:%d)", f.Function, f.File, f.Line)
	}
}

// MarshalJSON renders the error for JSON log output. The stack is omitted.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := struct {
		Code      Code           `json:"code"`
		Severity  string         `json:"severity"`
		Message   string         `json:"message"`
		Operation string         `json:"operation,omitempty"`
		Details   map[string]any `json:"details,omitempty"`
		Cause     string         `json:"cause,omitempty"`
	}{
		Code:      e.code,
		Severity:  e.severity.String(),
		Message:   e.message,
		Operation: e.operation,
	}
	if len(e.details) > 0 {
		out.Details = e.Details()
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

// callers skips itself, runtime.Callers and the constructor that called it.
func callers() []uintptr {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or
// CodeUnknown.
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity is GetCode for the severity; foreign errors rank medium.
func GetSeverity(err error) Severity {
	if e, ok := asError(err); ok {
		return e.severity
	}
	return SeverityMedium
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
