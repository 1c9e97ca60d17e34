// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-08-12
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Library version of pkg/datetime
	Library = "1.0.0"

	// CLI version of cmd/gregor
	CLI = "1.0.0"

	// TimelineSchema is the schema version of the marks database
	TimelineSchema = 1
)

// Commit and BuildDate are set at build time via -ldflags
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns a one-line version summary for the CLI
func String() string {
	return fmt.Sprintf("gregor %s (datetime %s, timeline schema v%d, commit %s, built %s)",
		CLI, Library, TimelineSchema, Commit, BuildDate)
}
