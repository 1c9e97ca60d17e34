package calview

import (
	"fmt"
	"strings"

	"github.com/msto63/gregor/pkg/datetime"
)

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// cellWidth is the width of one day cell: bracket, two digits, bracket, flag.
const cellWidth = 5

// RenderMonth draws the month containing cursor as a Monday-first grid in
// plain text. The cursor day is bracketed, today is flagged with '*' and
// days present in marked with '+'. Trailing spaces are trimmed. Without
// flags March 2024 renders as
//
//	            March 2024
//	 Mo   Tu   We   Th   Fr   Sa   Su
//	                      1    2    3
//	  4    5    6    7    8    9   10
func RenderMonth(cursor, today datetime.Date, marked map[datetime.Date]bool) string {
	first := firstOfMonth(cursor)
	days := datetime.DaysInMonth(cursor.Year(), cursor.Month())

	var b strings.Builder
	title := fmt.Sprintf("%s %d", cursor.Month(), cursor.Year())
	width := cellWidth * len(weekdayHeader)
	b.WriteString(strings.Repeat(" ", (width-len(title))/2))
	b.WriteString(title)
	b.WriteByte('\n')

	var row strings.Builder
	for _, name := range weekdayHeader {
		fmt.Fprintf(&row, " %-4s", name)
	}
	b.WriteString(strings.TrimRight(row.String(), " "))

	// Monday is column 0
	col := (int(first.Weekday()) + 6) % 7
	row.Reset()
	row.WriteString(strings.Repeat(" ", col*cellWidth))

	d := first
	for i := 0; i < days; i++ {
		row.WriteString(cell(d, cursor, today, marked))
		col++
		if col == 7 {
			b.WriteByte('\n')
			b.WriteString(strings.TrimRight(row.String(), " "))
			row.Reset()
			col = 0
		}
		d = d.Next()
	}
	if row.Len() > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.TrimRight(row.String(), " "))
	}
	return b.String()
}

func cell(d, cursor, today datetime.Date, marked map[datetime.Date]bool) string {
	left, right := ' ', ' '
	if d == cursor {
		left, right = '[', ']'
	}
	flag := ' '
	switch {
	case d == today:
		flag = '*'
	case marked[d]:
		flag = '+'
	}
	return fmt.Sprintf("%c%2d%c%c", left, d.Day(), right, flag)
}
