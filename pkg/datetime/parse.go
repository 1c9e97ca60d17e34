package datetime

import (
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Field names one numeric component of a date or time in parse order lists.
type Field int

const (
	YearField Field = iota
	MonthField
	DayField
	HourField
	MinuteField
	SecondField
	MillisecondField
	MicrosecondField
	NanosecondField
)

var fieldNames = [...]string{
	"year", "month", "day",
	"hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond",
}

func (f Field) String() string {
	if f < YearField || f > NanosecondField {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// width is the fixed number of characters a date field occupies.
func (f Field) width() int {
	if f == YearField {
		return 4
	}
	return 2
}

func (f Field) isDate() bool { return f >= YearField && f <= DayField }
func (f Field) isTime() bool { return f >= HourField && f <= NanosecondField }

// Common orders.
var (
	YMD = []Field{YearField, MonthField, DayField}
	DMY = []Field{DayField, MonthField, YearField}
	MDY = []Field{MonthField, DayField, YearField}
)

// dateTextLen is the number of characters a textual date occupies, including
// two one-character separators.
const dateTextLen = 10

func parseError(op, input, format string, args ...any) *mdwerror.Error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeParseError).
		WithOperation(op).
		WithDetail("input", input)
}

// ParseFieldOrder reads a compact order such as "ymd" or "dmy" for dates
// and "hms" for times (y m d, h i s for hour minute second, then l u n for
// milli, micro and nano). Unknown letters fail with CodeParseError.
func ParseFieldOrder(s string) ([]Field, error) {
	letters := map[rune]Field{
		'y': YearField, 'm': MonthField, 'd': DayField,
		'h': HourField, 'i': MinuteField, 's': SecondField,
		'l': MillisecondField, 'u': MicrosecondField, 'n': NanosecondField,
	}
	out := make([]Field, 0, len(s))
	for _, r := range strings.ToLower(s) {
		f, ok := letters[r]
		if !ok {
			return nil, parseError("datetime.ParseFieldOrder", s, "unknown field letter %q", r)
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseDate reads exactly ten characters holding a year (4 digits) and a
// month and a day (2 digits each) in the given order, separated by any single
// characters. The default order is year, month, day.
//
//	ParseDate("2022-01-31")
//	ParseDate("31.01.2022", DayField, MonthField, YearField)
func ParseDate(s string, order ...Field) (Date, error) {
	const op = "datetime.ParseDate"
	if len(order) == 0 {
		order = YMD
	}
	if len(order) != 3 {
		return Date{}, parseError(op, s, "date order needs 3 fields, got %d", len(order))
	}
	if len(s) != dateTextLen {
		return Date{}, parseError(op, s, "date text must be %d characters, got %d", dateTextLen, len(s))
	}

	var values [3]int
	var seen [3]bool
	pos := 0
	for i, f := range order {
		if !f.isDate() {
			return Date{}, parseError(op, s, "%s is not a date field", f)
		}
		if seen[f] {
			return Date{}, parseError(op, s, "%s appears twice in date order", f)
		}
		seen[f] = true

		w := f.width()
		if pos+w > len(s) {
			return Date{}, parseError(op, s, "date text too short for %s", f)
		}
		v, err := atoiDigits(s[pos : pos+w])
		if err != nil {
			return Date{}, parseError(op, s, "%s %q is not numeric", f, s[pos:pos+w])
		}
		values[f] = v
		pos += w
		if i < len(order)-1 {
			pos++ // separator
		}
	}
	if pos != len(s) {
		return Date{}, parseError(op, s, "date layout does not cover %d characters", dateTextLen)
	}

	d, err := NewDate(values[YearField], time.Month(values[MonthField]), values[DayField])
	if err != nil {
		return Date{}, mdwerror.Wrap(err, "date text is out of range").
			WithCode(mdwerror.CodeParseError).
			WithOperation(op).
			WithDetail("input", s)
	}
	return d, nil
}

// ParseTime reads a time of day in tz from runs of digits split by any
// non-digit characters. Without an order the runs are hour, minute, second,
// millisecond, microsecond, nanosecond; missing trailing fields are zero.
// With an order the number of runs must match it exactly.
//
//	ParseTime("3:04:05.006", UTC)
//	ParseTime("05 04 03", UTC, SecondField, MinuteField, HourField)
func ParseTime(s string, tz Timezone, order ...Field) (Time, error) {
	const op = "datetime.ParseTime"
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })

	if len(order) == 0 {
		if len(tokens) > 6 {
			return Time{}, parseError(op, s, "time text has %d numeric groups, at most 6 allowed", len(tokens))
		}
		order = []Field{HourField, MinuteField, SecondField, MillisecondField, MicrosecondField, NanosecondField}[:len(tokens)]
	} else if len(tokens) != len(order) {
		return Time{}, parseError(op, s, "time text has %d numeric groups, order names %d", len(tokens), len(order))
	}

	var values [NanosecondField + 1]int
	var seen [NanosecondField + 1]bool
	for i, f := range order {
		if !f.isTime() {
			return Time{}, parseError(op, s, "%s is not a time field", f)
		}
		if seen[f] {
			return Time{}, parseError(op, s, "%s appears twice in time order", f)
		}
		seen[f] = true
		v, err := atoiDigits(tokens[i])
		if err != nil {
			return Time{}, parseError(op, s, "%s %q is not numeric", f, tokens[i])
		}
		values[f] = v
	}

	t, err := NewTime(values[HourField], values[MinuteField], values[SecondField],
		values[MillisecondField], values[MicrosecondField], values[NanosecondField], tz)
	if err != nil {
		return Time{}, mdwerror.Wrap(err, "time text is out of range").
			WithCode(mdwerror.CodeParseError).
			WithOperation(op).
			WithDetail("input", s)
	}
	return t, nil
}

// ParseDatetime splits s after the first ten characters, parses the date
// half with dateOrder (nil for year, month, day) and the remainder with
// timeOrder. The separator between the halves is consumed as a non-digit.
func ParseDatetime(s string, tz Timezone, dateOrder []Field, timeOrder ...Field) (Datetime, error) {
	if len(s) < dateTextLen {
		return Datetime{}, parseError("datetime.ParseDatetime", s, "datetime text shorter than a date")
	}
	d, err := ParseDate(s[:dateTextLen], dateOrder...)
	if err != nil {
		return Datetime{}, err
	}
	t, err := ParseTime(s[dateTextLen:], tz, timeOrder...)
	if err != nil {
		return Datetime{}, err
	}
	return Combine(d, t), nil
}

// atoiDigits accepts only ASCII digits, unlike strconv.Atoi which also
// takes a sign.
func atoiDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
