package datetime

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TimeDelta is a signed span of days plus a sub-day nanosecond remainder.
// It is kept normalized: |nanos| < one day and nanos never has the opposite
// sign of days, so each span has exactly one representation.
type TimeDelta struct {
	days  int64
	nanos int64
}

// NewTimeDelta sums offsets into a single span.
func NewTimeDelta(offsets ...Offset) TimeDelta {
	var d TimeDelta
	for _, o := range offsets {
		days, nanos := split(o)
		d = d.Add(normalizeDelta(days, nanos))
	}
	return d
}

// Between returns a - b.
func Between(a, b Datetime) TimeDelta {
	return a.SubDatetime(b)
}

func normalizeDelta(days, nanos int64) TimeDelta {
	days += nanos / nanosPerDay
	nanos %= nanosPerDay
	switch {
	case days > 0 && nanos < 0:
		days--
		nanos += nanosPerDay
	case days < 0 && nanos > 0:
		days++
		nanos -= nanosPerDay
	}
	return TimeDelta{days: days, nanos: nanos}
}

// Sign returns -1, 0 or +1.
func (d TimeDelta) Sign() int {
	switch {
	case d.days < 0 || d.nanos < 0:
		return -1
	case d.days > 0 || d.nanos > 0:
		return 1
	default:
		return 0
	}
}

func (d TimeDelta) IsZero() bool { return d.days == 0 && d.nanos == 0 }

// Days returns the whole days in d.
func (d TimeDelta) Days() int64 { return d.days }

// Hours returns the hours component, -23..23.
func (d TimeDelta) Hours() int64 { return d.nanos / nanosPerHour }

// Minutes returns the minutes component, -59..59.
func (d TimeDelta) Minutes() int64 { return d.nanos % nanosPerHour / nanosPerMinute }

// Seconds returns the seconds component, -59..59.
func (d TimeDelta) Seconds() int64 { return d.nanos % nanosPerMinute / nanosPerSecond }

func (d TimeDelta) Milliseconds() int64 {
	return d.nanos % nanosPerSecond / nanosPerMillisecond
}

func (d TimeDelta) Microseconds() int64 {
	return d.nanos % nanosPerMillisecond / nanosPerMicrosecond
}

func (d TimeDelta) Nanoseconds() int64 {
	return d.nanos % nanosPerMicrosecond
}

func (d TimeDelta) Add(other TimeDelta) TimeDelta {
	return normalizeDelta(d.days+other.days, d.nanos+other.nanos)
}

func (d TimeDelta) Sub(other TimeDelta) TimeDelta {
	return d.Add(other.Neg())
}

func (d TimeDelta) Neg() TimeDelta {
	return TimeDelta{days: -d.days, nanos: -d.nanos}
}

func (d TimeDelta) Abs() TimeDelta {
	if d.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// Compare orders spans by signed length.
func (d TimeDelta) Compare(other TimeDelta) int {
	if c := cmpInt(d.days, other.days); c != 0 {
		return c
	}
	return cmpInt(d.nanos, other.nanos)
}

// Duration converts d to a time.Duration. ok is false when d does not fit
// (about ±292 years).
func (d TimeDelta) Duration() (dur time.Duration, ok bool) {
	const maxDays = math.MaxInt64 / nanosPerDay
	if d.days > maxDays || d.days < -maxDays {
		return 0, false
	}
	return time.Duration(d.days*nanosPerDay + d.nanos), true
}

// DeltaOf converts a time.Duration.
func DeltaOf(dur time.Duration) TimeDelta {
	return normalizeDelta(0, int64(dur))
}

// String renders [-]Nd HH:MM:SS.nnnnnnnnn, omitting the day part when zero.
func (d TimeDelta) String() string {
	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
		d = d.Neg()
	}
	if d.days != 0 {
		fmt.Fprintf(&b, "%dd ", d.days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d.%09d",
		d.Hours(), d.Minutes(), d.Seconds(), d.nanos%nanosPerSecond)
	return b.String()
}
