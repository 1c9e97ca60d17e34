package datetime

import (
	"fmt"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Time is a wall-clock time of day with nanosecond precision in a Timezone.
// Every field stays within its modulus; the zero value is midnight UTC.
type Time struct {
	hour        int
	minute      int
	second      int
	millisecond int
	microsecond int
	nanosecond  int
	tz          Timezone
}

// NewTime validates and builds a Time. A field outside its modulus
// (hour 0..23, minute and second 0..59, sub-second fields 0..999) fails with
// CodeInvalidTime.
func NewTime(hour, minute, second, millisecond, microsecond, nanosecond int, tz Timezone) (Time, error) {
	fields := []struct {
		name  string
		value int
		limit int
	}{
		{"hour", hour, 24},
		{"minute", minute, 60},
		{"second", second, 60},
		{"millisecond", millisecond, 1000},
		{"microsecond", microsecond, 1000},
		{"nanosecond", nanosecond, 1000},
	}
	for _, f := range fields {
		if f.value < 0 || f.value >= f.limit {
			return Time{}, mdwerror.Newf("%s %d is outside [0, %d)", f.name, f.value, f.limit).
				WithCode(mdwerror.CodeInvalidTime).
				WithOperation("datetime.NewTime").
				WithDetail("field", f.name).
				WithDetail("value", f.value)
		}
	}
	return Time{
		hour:        hour,
		minute:      minute,
		second:      second,
		millisecond: millisecond,
		microsecond: microsecond,
		nanosecond:  nanosecond,
		tz:          tz,
	}, nil
}

// MustTime is NewTime for values known to be valid; it panics otherwise.
func MustTime(hour, minute, second, millisecond, microsecond, nanosecond int, tz Timezone) Time {
	t, err := NewTime(hour, minute, second, millisecond, microsecond, nanosecond, tz)
	if err != nil {
		panic(err)
	}
	return t
}

// Midnight returns 0:00:00 in tz.
func Midnight(tz Timezone) Time {
	return Time{tz: tz}
}

func (t Time) Hour() int { return t.hour }
func (t Time) Minute() int { return t.minute }
func (t Time) Second() int { return t.second }
func (t Time) Millisecond() int { return t.millisecond }
func (t Time) Microsecond() int { return t.microsecond }
func (t Time) Nanosecond() int { return t.nanosecond }
func (t Time) Timezone() Timezone { return t.tz }
func (t Time) IsMidnight() bool { return t.totalNanoseconds() == 0 }

func (t Time) withZone(tz Timezone) Time {
	t.tz = tz
	return t
}

func (t Time) totalMinutes() int64 {
	return int64(t.hour)*60 + int64(t.minute)
}

func (t Time) totalSeconds() int64 {
	return t.totalMinutes()*60 + int64(t.second)
}

func (t Time) totalMilliseconds() int64 {
	return t.totalSeconds()*1000 + int64(t.millisecond)
}

func (t Time) totalMicroseconds() int64 {
	return t.totalMilliseconds()*1000 + int64(t.microsecond)
}

func (t Time) totalNanoseconds() int64 {
	return t.totalMicroseconds()*1000 + int64(t.nanosecond)
}

// timeFromNanos builds a Time from a count already reduced to [0, nanosPerDay).
func timeFromNanos(n int64, tz Timezone) Time {
	t := Time{tz: tz}
	t.nanosecond = int(n % 1000)
	n /= 1000
	t.microsecond = int(n % 1000)
	n /= 1000
	t.millisecond = int(n % 1000)
	n /= 1000
	t.second = int(n % 60)
	n /= 60
	t.minute = int(n % 60)
	t.hour = int(n / 60)
	return t
}

// addNanos shifts t by n nanoseconds, |n| < nanosPerDay, and reports how many
// whole days the result crossed: -1, 0 or +1. Datetime applies the carry to
// its date; Time's own arithmetic discards it.
func (t Time) addNanos(n int64) (Time, int64) {
	total := t.totalNanoseconds() + n
	carry := floorDiv(total, nanosPerDay)
	return timeFromNanos(total-carry*nanosPerDay, t.tz), carry
}

// add applies a (days, nanos) pair as produced by split.
func (t Time) add(days, nanos int64) (Time, int64) {
	out, carry := t.addNanos(nanos)
	return out, days + carry
}

// Add shifts t by o, wrapping around midnight.
func (t Time) Add(o Offset) Time {
	out, _ := t.add(split(o))
	return out
}

// Sub shifts t back by o, wrapping around midnight.
func (t Time) Sub(o Offset) Time {
	out, _ := t.add(splitNeg(o))
	return out
}

// AddTime adds other's hour..nanosecond fields to t. Other's zone is ignored.
func (t Time) AddTime(other Time) Time {
	out, _ := t.addNanos(other.totalNanoseconds())
	return out
}

// SubTime subtracts other's hour..nanosecond fields from t.
func (t Time) SubTime(other Time) Time {
	out, _ := t.addNanos(-other.totalNanoseconds())
	return out
}

// AddDelta shifts t by d; the days component is discarded.
func (t Time) AddDelta(d TimeDelta) Time {
	out, _ := t.addNanos(d.nanos)
	return out
}

// SubDelta shifts t back by d.
func (t Time) SubDelta(d TimeDelta) Time {
	return t.AddDelta(d.Neg())
}

// In returns the same instant on tz's clock, wrapping around midnight.
func (t Time) In(tz Timezone) Time {
	out, _ := t.in(tz)
	return out
}

func (t Time) in(tz Timezone) (Time, int64) {
	out, carry := t.addNanos(int64(t.tz.OffsetDiff(tz)) * nanosPerHour)
	return out.withZone(tz), carry
}

// Compare orders t and other by time of day after moving other onto t's zone.
func (t Time) Compare(other Time) int {
	if other.tz != t.tz {
		other = other.In(t.tz)
	}
	return cmpInt(t.totalNanoseconds(), other.totalNanoseconds())
}

// Before reports whether t is earlier than other.
func (t Time) Before(other Time) bool { return t.Compare(other) < 0 }

// After reports whether t is later than other.
func (t Time) After(other Time) bool { return t.Compare(other) > 0 }

// Equal reports whether t and other name the same time of day once zones
// are reconciled.
func (t Time) Equal(other Time) bool { return t.Compare(other) == 0 }

// Format renders H:MM:SS.mmm.uuu.nnn with timeSep between hour, minute and
// second and subSep between the sub-second groups. Zero runes use the defaults.
func (t Time) Format(timeSep, subSep rune) string {
	if timeSep == 0 {
		timeSep = DefaultSeparators.Time
	}
	if subSep == 0 {
		subSep = DefaultSeparators.Subsecond
	}
	return fmt.Sprintf("%d%c%02d%c%02d%c%03d%c%03d%c%03d",
		t.hour, timeSep, t.minute, timeSep, t.second,
		subSep, t.millisecond, subSep, t.microsecond, subSep, t.nanosecond)
}

func (t Time) String() string {
	return t.Format(0, 0)
}
