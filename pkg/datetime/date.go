package datetime

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Date is a proleptic Gregorian calendar date.
//
// Fields are stored relative to Epoch so that the zero value is Epoch itself.
// Two Dates are equal under == exactly when they name the same day.
type Date struct {
	y int   // year - 1
	m uint8 // month - 1
	d uint8 // day - 1
}

// Epoch is 0001-01-01, the zero Date.
var Epoch = Date{}

// daysBefore[m] counts the days of a non-leap year before month m+1 begins.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	365,
}

// IsLeapYear reports whether year has a February 29th: divisible by 4 and
// either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year, or 0 for a month outside 1..12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// NewDate validates and builds a Date. Years below 0, months outside 1..12
// and days beyond the month's length fail with CodeInvalidDate.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 0 || month < time.January || month > time.December ||
		day < 1 || day > DaysInMonth(year, month) {
		return Date{}, mdwerror.Newf("%04d-%02d-%02d is not a valid date", year, int(month), day).
			WithCode(mdwerror.CodeInvalidDate).
			WithOperation("datetime.NewDate").
			WithDetail("year", year).
			WithDetail("month", int(month)).
			WithDetail("day", day)
	}
	return Date{y: year - 1, m: uint8(month - 1), d: uint8(day - 1)}, nil
}

// MustDate is NewDate for values known to be valid; it panics otherwise.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year.
func (d Date) Year() int { return d.y + 1 }

// Month returns the month, 1..12.
func (d Date) Month() time.Month { return time.Month(d.m) + 1 }

// Day returns the day of the month.
func (d Date) Day() int { return int(d.d) + 1 }

// YearDay returns the day of the year, 1..366.
func (d Date) YearDay() int {
	yd := daysBefore[d.m] + d.Day()
	if d.m > 1 && IsLeapYear(d.Year()) {
		yd++
	}
	return yd
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(d.unixDays()+int64(time.Thursday), 7))
}

// unixDays counts days since 1970-01-01, negative before it.
func (d Date) unixDays() int64 {
	return daysFromCivil(int64(d.Year()), int(d.Month()), d.Day())
}

// dateFromUnixDays is the inverse of unixDays. The result is valid for any
// input; years before 0 are produced as negative years.
func dateFromUnixDays(days int64) Date {
	y, m, dd := civilFromDays(days)
	return Date{y: int(y - 1), m: uint8(m - 1), d: uint8(dd - 1)}
}

// daysFromCivil converts a proleptic Gregorian date to days since 1970-01-01.
// Years are shifted to start in March so the leap day is the last day of the
// shifted year; eras are 400-year cycles of 146097 days.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64((m + 9) % 12)
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	y = yoe + era*400
	if m <= 2 {
		y++
	}
	return y, m, d
}

// AddDays moves n days forward (backward for negative n), carrying through
// month and year boundaries.
func (d Date) AddDays(n int64) Date {
	if n == 0 {
		return d
	}
	return dateFromUnixDays(d.unixDays() + n)
}

// SubDays moves n days backward.
func (d Date) SubDays(n int64) Date {
	return d.AddDays(-n)
}

// Next returns the following day.
func (d Date) Next() Date {
	if int(d.d)+1 < DaysInMonth(d.Year(), d.Month()) {
		d.d++
		return d
	}
	d.d = 0
	if d.m < 11 {
		d.m++
		return d
	}
	d.m = 0
	d.y++
	return d
}

// Prev returns the preceding day.
func (d Date) Prev() Date {
	if d.d > 0 {
		d.d--
		return d
	}
	if d.m > 0 {
		d.m--
	} else {
		d.m = 11
		d.y--
	}
	d.d = uint8(DaysInMonth(d.Year(), d.Month()) - 1)
	return d
}

// AddMonths moves n calendar months, clamping the day to the target month's
// length (Jan 31 + 1 month = Feb 28 or 29).
func (d Date) AddMonths(n int) Date {
	total := int64(d.y+1)*12 + int64(d.m) + int64(n)
	year := int(floorDiv(total, 12))
	month := time.Month(floorMod(total, 12)) + 1
	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{y: year - 1, m: uint8(month - 1), d: uint8(day - 1)}
}

// AddYears moves n years, clamping Feb 29 to Feb 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int64 {
	return other.unixDays() - d.unixDays()
}

// Compare returns -1, 0 or +1 comparing (year, month, day) lexicographically.
func (d Date) Compare(other Date) int {
	switch {
	case d.y != other.y:
		return cmpInt(int64(d.y), int64(other.y))
	case d.m != other.m:
		return cmpInt(int64(d.m), int64(other.m))
	default:
		return cmpInt(int64(d.d), int64(other.d))
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d == other }

// Format renders YYYY-MM-DD with sep between components. A zero sep uses '-'.
func (d Date) Format(sep rune) string {
	if sep == 0 {
		sep = DefaultSeparators.Date
	}
	return fmt.Sprintf("%04d%c%02d%c%02d", d.Year(), sep, int(d.Month()), sep, d.Day())
}

// String renders YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DefaultSeparators.Date)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
