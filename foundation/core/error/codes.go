// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used across gregor. Each code carries a category,
//              a severity and the exit status the CLI returns for it; all three
//              live in one table so a new code cannot be half registered.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-21
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-03 v0.2.0: Calendar codes, removed platform-specific codes
// - 2025-08-21 v0.3.0: Code table replaces the per-property switches

package error

// Code classifies an error independent of its message.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Rejected calendar values
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeInvalidTime     Code = "INVALID_TIME"
	CodeParseError      Code = "PARSE_ERROR"
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"

	// Timeline database
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"
)

type codeInfo struct {
	category string
	severity Severity
	exit     int
}

// Exit status 2 marks a usage problem the user can fix by changing the
// command line or the config file.
var codes = map[Code]codeInfo{
	CodeUnknown:      {"generic", SeverityMedium, 1},
	CodeInternal:     {"generic", SeverityHigh, 1},
	CodeNotFound:     {"generic", SeverityLow, 1},
	CodeInvalidInput: {"generic", SeverityLow, 2},

	CodeInvalidDate:     {"calendar", SeverityLow, 2},
	CodeInvalidTime:     {"calendar", SeverityLow, 2},
	CodeParseError:      {"calendar", SeverityLow, 2},
	CodeInvalidTimezone: {"calendar", SeverityLow, 2},

	CodeDatabaseError:    {"database", SeverityHigh, 1},
	CodeConnectionFailed: {"database", SeverityHigh, 1},

	CodeConfigError:      {"configuration", SeverityMedium, 1},
	CodeMissingConfig:    {"configuration", SeverityMedium, 1},
	CodeInvalidConfig:    {"configuration", SeverityMedium, 2},
	CodeEnvironmentError: {"configuration", SeverityCritical, 1},
}

func lookup(c Code) codeInfo {
	if info, ok := codes[c]; ok {
		return info
	}
	return codes[CodeUnknown]
}

func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the codes declared above.
func (c Code) IsValid() bool {
	_, ok := codes[c]
	return ok
}

// Category groups codes by the layer that raises them.
func (c Code) Category() string {
	return lookup(c).category
}

// ExitCode is the process status the CLI exits with: 2 for usage errors,
// 1 otherwise.
func (c Code) ExitCode() int {
	return lookup(c).exit
}
