// File: severity.go
// Title: Error Severity Levels
// Description: Ranks errors from a caller's typo up to a broken environment.
//              The logger turns the rank into a log level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-21 v0.2.0: Severity comes from the code table; ParseSeverity added

package error

import "strings"

// Severity ranks how far an error reaches beyond the failed call.
type Severity int

const (
	// SeverityLow is rejected input: a bad date, an unknown zone name.
	SeverityLow Severity = iota
	// SeverityMedium is the rank of errors without a more specific code.
	SeverityMedium
	// SeverityHigh means a dependency failed, typically the timeline database.
	SeverityHigh
	// SeverityCritical means the process environment itself is unusable.
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity is the inverse of String. Case is ignored.
func ParseSeverity(name string) (Severity, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), true
		}
	}
	return SeverityMedium, false
}

// GetSeverityFromCode returns the rank registered for code. Codes without
// an entry rank medium.
func GetSeverityFromCode(code Code) Severity {
	return lookup(code).severity
}
