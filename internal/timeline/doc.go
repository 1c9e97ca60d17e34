// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     timeline
// Description: Persistent labelled instants ("marks") for the gregor CLI
// Author:      Mike Stoffels
// Created:     2025-08-18
// License:     MIT
// ============================================================================

// Package timeline stores labelled instants in SQLite.
//
// A mark keeps its instant as Unix milliseconds together with the UTC offset
// it was recorded in, so a mark added as 09:00 EST reads back as 09:00 EST
// rather than 14:00 UTC. Sub-millisecond fields are not persisted.
//
// Two implementations share the Store interface: SQLiteStore for the CLI and
// MemoryStore for tests and dry runs.
package timeline
