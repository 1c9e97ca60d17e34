// Package rangex provides a closed interval over any ordered value type.
//
// Package: rangex
// Title: Generic Ordered Ranges
// Description: Range[T] holds a start and an end of any type that can compare
//              itself to another value of the same type. It answers containment,
//              overlap and intersection questions and is the building block for
//              date and datetime ranges in gregor.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: TimeRange over time.Time
// - 2025-08-14 v0.2.0: Generic Range[T Comparable[T]] replacing TimeRange
//
// Usage:
//
//	r, err := rangex.New(start, end)
//	if err != nil {
//		return err // end before start
//	}
//	if r.Contains(x) { ... }
package rangex
