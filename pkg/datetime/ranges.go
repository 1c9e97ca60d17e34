package datetime

import (
	"iter"

	"github.com/msto63/gregor/foundation/utils/rangex"
)

// DateRange is a closed span of calendar days.
type DateRange struct {
	rangex.Range[Date]
}

// NewDateRange builds [start, end]; end before start fails with CodeInvalidInput.
func NewDateRange(start, end Date) (DateRange, error) {
	r, err := rangex.New(start, end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{r}, nil
}

// Len returns the number of days in the range, both ends included.
func (r DateRange) Len() int64 {
	return r.Start().DaysUntil(r.End()) + 1
}

// Days yields every date from start to end.
func (r DateRange) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		end := r.End()
		for d := r.Start(); !d.After(end); d = d.Next() {
			if !yield(d) {
				return
			}
		}
	}
}

// DatetimeRange is a closed span between two instants.
type DatetimeRange struct {
	rangex.Range[Datetime]
}

// NewDatetimeRange builds [start, end]; end before start fails with CodeInvalidInput.
func NewDatetimeRange(start, end Datetime) (DatetimeRange, error) {
	r, err := rangex.New(start, end)
	if err != nil {
		return DatetimeRange{}, err
	}
	return DatetimeRange{r}, nil
}

// Duration returns end - start.
func (r DatetimeRange) Duration() TimeDelta {
	return r.End().SubDatetime(r.Start())
}

// Steps yields start, start+step, start+2*step ... while not after end.
// A step that does not move forward yields only start.
func (r DatetimeRange) Steps(step Offset) iter.Seq[Datetime] {
	return func(yield func(Datetime) bool) {
		end := r.End()
		dt := r.Start()
		for !dt.After(end) {
			if !yield(dt) {
				return
			}
			next := dt.Add(step)
			if !next.After(dt) {
				return
			}
			dt = next
		}
	}
}
