package datetime

import (
	"time"
)

// Datetime is a Date and a Time in one zone. Sub-day arithmetic runs on the
// time half and any day it crosses is carried into the date half before the
// method returns, so a Datetime is never observed half-updated.
type Datetime struct {
	date Date
	time Time
}

// NewDatetime validates every component and builds a Datetime. Date failures
// carry CodeInvalidDate, time failures CodeInvalidTime.
func NewDatetime(year int, month time.Month, day, hour, minute, second, millisecond, microsecond, nanosecond int, tz Timezone) (Datetime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Datetime{}, err
	}
	t, err := NewTime(hour, minute, second, millisecond, microsecond, nanosecond, tz)
	if err != nil {
		return Datetime{}, err
	}
	return Datetime{date: d, time: t}, nil
}

// MustDatetime is NewDatetime for values known to be valid; it panics otherwise.
func MustDatetime(year int, month time.Month, day, hour, minute, second, millisecond, microsecond, nanosecond int, tz Timezone) Datetime {
	dt, err := NewDatetime(year, month, day, hour, minute, second, millisecond, microsecond, nanosecond, tz)
	if err != nil {
		panic(err)
	}
	return dt
}

// FromDate returns midnight of d in the default zone.
func FromDate(d Date) Datetime {
	return Datetime{date: d, time: Midnight(DefaultTimezone())}
}

// Combine joins a date and a time of day.
func Combine(d Date, t Time) Datetime {
	return Datetime{date: d, time: t}
}

// Date returns the date half.
func (dt Datetime) Date() Date { return dt.date }

// Time returns the time half.
func (dt Datetime) Time() Time { return dt.time }

func (dt Datetime) Year() int { return dt.date.Year() }
func (dt Datetime) Month() time.Month { return dt.date.Month() }
func (dt Datetime) Day() int { return dt.date.Day() }
func (dt Datetime) Weekday() time.Weekday { return dt.date.Weekday() }
func (dt Datetime) Hour() int { return dt.time.hour }
func (dt Datetime) Minute() int { return dt.time.minute }
func (dt Datetime) Second() int { return dt.time.second }
func (dt Datetime) Millisecond() int { return dt.time.millisecond }
func (dt Datetime) Microsecond() int { return dt.time.microsecond }
func (dt Datetime) Nanosecond() int { return dt.time.nanosecond }
func (dt Datetime) Timezone() Timezone { return dt.time.tz }

func (dt Datetime) carry(t Time, days int64) Datetime {
	return Datetime{date: dt.date.AddDays(days), time: t}
}

// Add shifts dt by o. Days go straight to the date; smaller units run
// through the time of day and carry into the date.
func (dt Datetime) Add(o Offset) Datetime {
	if o.Unit() == Day {
		return Datetime{date: dt.date.AddDays(o.Count()), time: dt.time}
	}
	return dt.carry(dt.time.add(split(o)))
}

// Sub shifts dt back by o.
func (dt Datetime) Sub(o Offset) Datetime {
	return dt.carry(dt.time.add(splitNeg(o)))
}

// AddDays moves dt n calendar days, keeping the time of day.
func (dt Datetime) AddDays(n int64) Datetime {
	return dt.Add(Days(n))
}

// AddMonths moves dt n calendar months, clamping the day of month.
func (dt Datetime) AddMonths(n int) Datetime {
	return Datetime{date: dt.date.AddMonths(n), time: dt.time}
}

// Next returns dt one day later.
func (dt Datetime) Next() Datetime {
	return Datetime{date: dt.date.Next(), time: dt.time}
}

// Prev returns dt one day earlier.
func (dt Datetime) Prev() Datetime {
	return Datetime{date: dt.date.Prev(), time: dt.time}
}

// AddTime adds other's hour..nanosecond fields, carrying into the date.
func (dt Datetime) AddTime(other Time) Datetime {
	return dt.carry(dt.time.addNanos(other.totalNanoseconds()))
}

// SubTime subtracts other's hour..nanosecond fields, borrowing from the date.
func (dt Datetime) SubTime(other Time) Datetime {
	return dt.carry(dt.time.addNanos(-other.totalNanoseconds()))
}

// AddDelta shifts dt by d.
func (dt Datetime) AddDelta(d TimeDelta) Datetime {
	return dt.carry(dt.time.add(d.days, d.nanos))
}

// SubDelta shifts dt back by d.
func (dt Datetime) SubDelta(d TimeDelta) Datetime {
	return dt.AddDelta(d.Neg())
}

// SubDatetime returns the span from other to dt, independent of their zones.
func (dt Datetime) SubDatetime(other Datetime) TimeDelta {
	a, b := dt.In(UTC), other.In(UTC)
	return normalizeDelta(
		b.date.DaysUntil(a.date),
		a.time.totalNanoseconds()-b.time.totalNanoseconds(),
	)
}

// In returns the same instant on tz's clock.
func (dt Datetime) In(tz Timezone) Datetime {
	if dt.time.tz == tz {
		return dt
	}
	return dt.carry(dt.time.in(tz))
}

// Compare orders instants, -1, 0 or +1. Operands in different zones are
// compared after moving other onto dt's zone.
func (dt Datetime) Compare(other Datetime) int {
	other = other.In(dt.time.tz)
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return cmpInt(dt.time.totalNanoseconds(), other.time.totalNanoseconds())
}

func (dt Datetime) Before(other Datetime) bool { return dt.Compare(other) < 0 }
func (dt Datetime) After(other Datetime) bool { return dt.Compare(other) > 0 }

// Equal reports whether dt and other are the same instant. Use == to also
// require the same zone.
func (dt Datetime) Equal(other Datetime) bool { return dt.Compare(other) == 0 }

// ToMs returns milliseconds since 1970-01-01 00:00 on tz's clock. With UTC
// this is the Unix timestamp. Sub-millisecond fields are truncated.
func (dt Datetime) ToMs(tz Timezone) int64 {
	v := dt.In(tz)
	return v.date.unixDays()*millisPerDay + v.time.totalMilliseconds()
}

// UnixMilli returns the Unix timestamp in milliseconds.
func (dt Datetime) UnixMilli() int64 {
	return dt.ToMs(UTC)
}

// FromMs reads ts as milliseconds since 1970-01-01 00:00 on from's clock and
// returns that instant in to. FromMs(dt.ToMs(z), z, z) == dt up to
// millisecond precision.
func FromMs(ts int64, to, from Timezone) Datetime {
	days := floorDiv(ts, millisPerDay)
	ms := ts - days*millisPerDay
	wall := Datetime{
		date: dateFromUnixDays(days),
		time: timeFromNanos(ms*nanosPerMillisecond, from),
	}
	return wall.In(to)
}

// FromUnixMilli returns the instant of a Unix millisecond timestamp in tz.
func FromUnixMilli(ms int64, tz Timezone) Datetime {
	return FromMs(ms, tz, UTC)
}

// StdTime converts dt to a time.Time in a fixed location with dt's offset.
func (dt Datetime) StdTime() time.Time {
	t := dt.time
	return time.Date(dt.date.Year(), dt.date.Month(), dt.date.Day(),
		t.hour, t.minute, t.second,
		int(int64(t.millisecond)*nanosPerMillisecond+int64(t.microsecond)*nanosPerMicrosecond)+t.nanosecond,
		t.tz.Location())
}

// FromStdTime returns the instant of t on tz's clock.
func FromStdTime(t time.Time, tz Timezone) Datetime {
	t = t.In(tz.Location())
	ns := t.Nanosecond()
	return Datetime{
		date: Date{y: t.Year() - 1, m: uint8(t.Month() - 1), d: uint8(t.Day() - 1)},
		time: Time{
			hour:        t.Hour(),
			minute:      t.Minute(),
			second:      t.Second(),
			millisecond: ns / 1e6,
			microsecond: ns / 1e3 % 1000,
			nanosecond:  ns % 1000,
			tz:          tz,
		},
	}
}

// Format renders the date, seps.Between, then the time.
func (dt Datetime) Format(seps Separators) string {
	seps = seps.withDefaults()
	return dt.date.Format(seps.Date) + string(seps.Between) + dt.time.Format(seps.Time, seps.Subsecond)
}

// String renders e.g. 2000-01-02 3:04:05.006.007.008.
func (dt Datetime) String() string {
	return dt.Format(DefaultSeparators)
}
