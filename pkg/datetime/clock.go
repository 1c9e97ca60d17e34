package datetime

import (
	"sync"
	"time"
)

// ClockSource supplies the current date and time of day.
type ClockSource interface {
	CurrentDate() Date
	CurrentTime() Time
}

// snapshotter is implemented by sources that can read date and time from a
// single instant. Now prefers it so a call that straddles midnight cannot
// pair today's date with tomorrow's time.
type snapshotter interface {
	currentDatetime() Datetime
}

// HostClock reads the system clock and reports it in the default zone.
type HostClock struct{}

func (HostClock) currentDatetime() Datetime {
	return FromStdTime(time.Now(), DefaultTimezone())
}

func (c HostClock) CurrentDate() Date { return c.currentDatetime().date }
func (c HostClock) CurrentTime() Time { return c.currentDatetime().time }

// FixedClock always reports At.
type FixedClock struct {
	At Datetime
}

func (c FixedClock) currentDatetime() Datetime { return c.At }
func (c FixedClock) CurrentDate() Date { return c.At.date }
func (c FixedClock) CurrentTime() Time { return c.At.time }

// OverrideClock reports a base source except where a date or time override
// is set. Overrides are independent: a mocked date with an unset time
// reports the base source's time of day.
type OverrideClock struct {
	mu   sync.RWMutex
	base ClockSource
	date *Date
	time *Time
}

// NewOverrideClock wraps base. A nil base means HostClock.
func NewOverrideClock(base ClockSource) *OverrideClock {
	if base == nil {
		base = HostClock{}
	}
	return &OverrideClock{base: base}
}

func (c *OverrideClock) SetDate(d Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = &d
}

func (c *OverrideClock) ResetDate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = nil
}

func (c *OverrideClock) SetTime(t Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = &t
}

func (c *OverrideClock) ResetTime() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = nil
}

// Reset clears both overrides.
func (c *OverrideClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date, c.time = nil, nil
}

func (c *OverrideClock) currentDatetime() Datetime {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.date != nil && c.time != nil {
		return Datetime{date: *c.date, time: *c.time}
	}
	dt := snapshot(c.base)
	if c.date != nil {
		dt.date = *c.date
	}
	if c.time != nil {
		dt.time = *c.time
	}
	return dt
}

func (c *OverrideClock) CurrentDate() Date { return c.currentDatetime().date }
func (c *OverrideClock) CurrentTime() Time { return c.currentDatetime().time }

func snapshot(src ClockSource) Datetime {
	if s, ok := src.(snapshotter); ok {
		return s.currentDatetime()
	}
	return Datetime{date: src.CurrentDate(), time: src.CurrentTime()}
}

// processClock backs Now, Today and the SetMock/ResetMock helpers.
var processClock = NewOverrideClock(HostClock{})

// Clock returns the process-wide clock used by Now and Today.
func Clock() *OverrideClock { return processClock }

// SetMockDate makes Now and Today report d until ResetMockDate.
func SetMockDate(d Date) { processClock.SetDate(d) }

// ResetMockDate returns the date half of Now and Today to the host clock.
func ResetMockDate() { processClock.ResetDate() }

// SetMockTime makes Now and NowTime report t until ResetMockTime.
func SetMockTime(t Time) { processClock.SetTime(t) }

// ResetMockTime returns the time half of Now to the host clock.
func ResetMockTime() { processClock.ResetTime() }

// Now returns the current instant in the default zone shifted by offsets.
func Now(offsets ...Offset) Datetime {
	return NowFrom(processClock, DefaultTimezone(), offsets...)
}

// NowIn returns the current instant in tz shifted by offsets.
func NowIn(tz Timezone, offsets ...Offset) Datetime {
	return NowFrom(processClock, tz, offsets...)
}

// NowFrom reads src, converts to tz and applies offsets with full date carry.
func NowFrom(src ClockSource, tz Timezone, offsets ...Offset) Datetime {
	return Shift(snapshot(src).In(tz), offsets...)
}

// NowTime returns the current time of day in the default zone shifted by
// offsets, wrapping around midnight.
func NowTime(offsets ...Offset) Time {
	return NowTimeIn(DefaultTimezone(), offsets...)
}

// NowTimeIn is NowTime in tz.
func NowTimeIn(tz Timezone, offsets ...Offset) Time {
	return Shift(processClock.CurrentTime().In(tz), offsets...)
}

// Today returns the current date shifted by offsets.
func Today(offsets ...Days) Date {
	return TodayFrom(processClock, offsets...)
}

// TodayFrom is Today for an explicit source.
func TodayFrom(src ClockSource, offsets ...Days) Date {
	d := src.CurrentDate()
	for _, n := range offsets {
		d = d.AddDays(int64(n))
	}
	return d
}
