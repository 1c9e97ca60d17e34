package datetime

// Separators selects the characters placed between rendered components.
// A zero rune means the corresponding DefaultSeparators entry.
type Separators struct {
	Date      rune // between year, month and day
	Between   rune // between the date and the time
	Time      rune // between hour, minute and second
	Subsecond rune // before and between the millisecond, microsecond and nanosecond groups
}

// DefaultSeparators renders 2000-01-02 3:04:05.006.007.008.
var DefaultSeparators = Separators{
	Date:      '-',
	Between:   ' ',
	Time:      ':',
	Subsecond: '.',
}

func (s Separators) withDefaults() Separators {
	if s.Date == 0 {
		s.Date = DefaultSeparators.Date
	}
	if s.Between == 0 {
		s.Between = DefaultSeparators.Between
	}
	if s.Time == 0 {
		s.Time = DefaultSeparators.Time
	}
	if s.Subsecond == 0 {
		s.Subsecond = DefaultSeparators.Subsecond
	}
	return s
}
