package datetime

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

const (
	nanosPerMicrosecond int64 = 1000
	nanosPerMillisecond       = 1000 * nanosPerMicrosecond
	nanosPerSecond            = 1000 * nanosPerMillisecond
	nanosPerMinute            = 60 * nanosPerSecond
	nanosPerHour              = 60 * nanosPerMinute
	nanosPerDay               = 24 * nanosPerHour

	millisPerDay   int64 = 24 * 60 * 60 * 1000
	secondsPerHour       = 60 * 60
)

// Unit identifies the granularity of an Offset.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

var unitNames = [...]string{"ns", "us", "ms", "s", "m", "h", "d"}

var unitNanos = [...]int64{
	Nanosecond:  1,
	Microsecond: nanosPerMicrosecond,
	Millisecond: nanosPerMillisecond,
	Second:      nanosPerSecond,
	Minute:      nanosPerMinute,
	Hour:        nanosPerHour,
	Day:         nanosPerDay,
}

func (u Unit) String() string {
	if u < Nanosecond || u > Day {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Offset is a signed count of a single unit. Time and Datetime accept any
// Offset in Add and Sub; the concrete types below are the usual way to build one.
type Offset interface {
	Unit() Unit
	Count() int64
}

type (
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Nanoseconds  int64
)

func (n Days) Unit() Unit { return Day }
func (n Hours) Unit() Unit { return Hour }
func (n Minutes) Unit() Unit { return Minute }
func (n Seconds) Unit() Unit { return Second }
func (n Milliseconds) Unit() Unit { return Millisecond }
func (n Microseconds) Unit() Unit { return Microsecond }
func (n Nanoseconds) Unit() Unit { return Nanosecond }
func (n Days) Count() int64 { return int64(n) }
func (n Hours) Count() int64 { return int64(n) }
func (n Minutes) Count() int64 { return int64(n) }
func (n Seconds) Count() int64 { return int64(n) }
func (n Milliseconds) Count() int64 { return int64(n) }
func (n Microseconds) Count() int64 { return int64(n) }
func (n Nanoseconds) Count() int64 { return int64(n) }

// Shifter is the arithmetic Time and Datetime share, so offset helpers can be
// written once for both.
type Shifter[T any] interface {
	Add(o Offset) T
	Sub(o Offset) T
}

var (
	_ Shifter[Time]     = Time{}
	_ Shifter[Datetime] = Datetime{}
)

// Shift applies offsets to v in order.
func Shift[T Shifter[T]](v T, offsets ...Offset) T {
	for _, o := range offsets {
		v = v.Add(o)
	}
	return v
}

// Unshift undoes Shift: it subtracts offsets from v in reverse order.
func Unshift[T Shifter[T]](v T, offsets ...Offset) T {
	for i := len(offsets) - 1; i >= 0; i-- {
		v = v.Sub(offsets[i])
	}
	return v
}

// OffsetOf builds the concrete Offset for u.
func OffsetOf(u Unit, n int64) Offset {
	switch u {
	case Day:
		return Days(n)
	case Hour:
		return Hours(n)
	case Minute:
		return Minutes(n)
	case Second:
		return Seconds(n)
	case Millisecond:
		return Milliseconds(n)
	case Microsecond:
		return Microseconds(n)
	default:
		return Nanoseconds(n)
	}
}

// split breaks an offset into whole days and a sub-day nanosecond remainder
// with the same sign. Splitting before scaling keeps every intermediate value
// below one day of nanoseconds, so arbitrarily large counts cannot overflow.
func split(o Offset) (days, nanos int64) {
	u, n := o.Unit(), o.Count()
	if u == Day {
		return n, 0
	}
	perDay := nanosPerDay / unitNanos[u]
	return n / perDay, (n % perDay) * unitNanos[u]
}

// splitNeg is split for the negated offset. The parts are negated after
// splitting, so every sub-day count including math.MinInt64 is exact. Days
// counts must stay above math.MinInt64.
func splitNeg(o Offset) (days, nanos int64) {
	days, nanos = split(o)
	return -days, -nanos
}

// ParseOffset reads "<int><unit>" such as "2h", "-15m", "500ms" or "3d".
// Units: d h m s ms us µs ns.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '-' || s[end] == '+' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return nil, mdwerror.Wrap(err, "offset amount is not an integer").
			WithCode(mdwerror.CodeParseError).
			WithOperation("datetime.ParseOffset").
			WithDetail("input", s)
	}

	switch s[end:] {
	case "d":
		return Days(n), nil
	case "h":
		return Hours(n), nil
	case "m":
		return Minutes(n), nil
	case "s":
		return Seconds(n), nil
	case "ms":
		return Milliseconds(n), nil
	case "us", "µs":
		return Microseconds(n), nil
	case "ns":
		return Nanoseconds(n), nil
	}
	return nil, mdwerror.Newf("unknown offset unit %q", s[end:]).
		WithCode(mdwerror.CodeParseError).
		WithOperation("datetime.ParseOffset").
		WithDetail("input", s)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
