// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     datetime
// Description: Dates, times of day, timezones, deltas and composite instants
// Author:      Mike Stoffels
// Created:     2025-08-03
// License:     MIT
// ============================================================================

// Package datetime models calendar dates, times of day with nanosecond
// precision and a fixed UTC offset, and the composite Datetime instant.
//
// All types are values. Every public operation returns a normalized value:
// months stay in 1..12, days never exceed the length of their month (leap
// years included) and each sub-day field stays within its modulus. Arithmetic
// on a Time that crosses midnight reports the crossed days to Datetime, which
// applies them to its Date half in the same step.
//
// Timezones are fixed offsets in whole hours. Daylight saving and historical
// offset changes are not modelled; the host zone is resolved once by matching
// its abbreviation against a small registry (see LocalTimezone).
//
// "Now" queries read a ClockSource. The package-level functions use a
// process-wide OverrideClock whose date and time can be pinned for tests with
// SetMockDate/SetMockTime and released with ResetMockDate/ResetMockTime.
package datetime
