// File: rangex.go
// Title: Generic Ordered Range
// Description: Implements Range[T], a closed interval [start, end] over any
//              type exposing Compare(T) int.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: TimeRange with Duration, Contains, Overlaps, String
// - 2025-08-14 v0.2.0: Generic over Comparable, added Intersect and Encloses

package rangex

import (
	"fmt"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Comparable is satisfied by types that order themselves: Compare returns a
// negative number, zero or a positive number when the receiver is before,
// equal to or after other.
type Comparable[T any] interface {
	Compare(other T) int
}

// Range is the closed interval [Start, End]. Start never compares after End.
type Range[T Comparable[T]] struct {
	start T
	end   T
}

// New builds [start, end]. An end before start fails with CodeInvalidInput.
func New[T Comparable[T]](start, end T) (Range[T], error) {
	if end.Compare(start) < 0 {
		return Range[T]{}, mdwerror.Newf("range end %v is before start %v", end, start).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("rangex.New")
	}
	return Range[T]{start: start, end: end}, nil
}

// Must is New for bounds known to be ordered; it panics otherwise.
func Must[T Comparable[T]](start, end T) Range[T] {
	r, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Start returns the lower bound.
func (r Range[T]) Start() T { return r.start }

// End returns the upper bound.
func (r Range[T]) End() T { return r.end }

// Contains checks if v lies within the range, bounds included.
func (r Range[T]) Contains(v T) bool {
	return v.Compare(r.start) >= 0 && v.Compare(r.end) <= 0
}

// Overlaps checks if this range shares at least one point with other.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.start.Compare(other.end) <= 0 && other.start.Compare(r.end) <= 0
}

// Encloses checks if other lies entirely within this range.
func (r Range[T]) Encloses(other Range[T]) bool {
	return r.Contains(other.start) && r.Contains(other.end)
}

// Intersect returns the common part of both ranges. ok is false when they
// do not overlap.
func (r Range[T]) Intersect(other Range[T]) (Range[T], bool) {
	if !r.Overlaps(other) {
		return Range[T]{}, false
	}
	start, end := r.start, r.end
	if other.start.Compare(start) > 0 {
		start = other.start
	}
	if other.end.Compare(end) < 0 {
		end = other.end
	}
	return Range[T]{start: start, end: end}, true
}

// String returns "start - end" using the bounds' own formatting.
func (r Range[T]) String() string {
	return fmt.Sprintf("%v - %v", r.start, r.end)
}
