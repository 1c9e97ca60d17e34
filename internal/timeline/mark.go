package timeline

import (
	"context"
	"sort"
	"strings"

	"github.com/msto63/gregor/pkg/datetime"
)

// Mark is a labelled instant.
type Mark struct {
	ID      string            `json:"id" yaml:"id"`
	Label   string            `json:"label" yaml:"label"`
	At      datetime.Datetime `json:"at" yaml:"at"`
	Created datetime.Datetime `json:"created" yaml:"created"`
}

// Filter selects marks in List. Zero fields do not filter.
type Filter struct {
	// Range keeps marks whose instant lies within it, bounds included
	Range *datetime.DatetimeRange

	// LabelPrefix keeps marks whose label starts with it
	LabelPrefix string

	// Limit caps the number of results
	Limit int
}

// Store persists marks. List returns marks ordered by instant, oldest first;
// marks at the same instant are ordered by creation, then id.
type Store interface {
	Add(ctx context.Context, label string, at datetime.Datetime) (*Mark, error)
	Get(ctx context.Context, id string) (*Mark, error)
	List(ctx context.Context, filter Filter) ([]*Mark, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// matches reports whether m passes every filter except Limit.
func (f Filter) matches(m *Mark) bool {
	if f.Range != nil && !f.Range.Contains(m.At) {
		return false
	}
	return strings.HasPrefix(m.Label, f.LabelPrefix)
}

// truncate drops sub-millisecond fields, keeping the zone. This is exactly
// what survives a round trip through the database.
func truncate(dt datetime.Datetime) datetime.Datetime {
	return datetime.FromUnixMilli(dt.UnixMilli(), dt.Timezone())
}

// ceilMs is the first whole Unix millisecond at or after dt. Stored instants
// are whole milliseconds, so at_ms >= ceilMs(start) selects exactly the marks
// that Range.Contains accepts; UnixMilli already floors the end bound.
func ceilMs(dt datetime.Datetime) int64 {
	ms := dt.UnixMilli()
	if dt.Microsecond() != 0 || dt.Nanosecond() != 0 {
		ms++
	}
	return ms
}

func sortMarks(marks []*Mark) {
	sort.SliceStable(marks, func(i, j int) bool {
		if c := marks[i].At.Compare(marks[j].At); c != 0 {
			return c < 0
		}
		if c := marks[i].Created.Compare(marks[j].Created); c != 0 {
			return c < 0
		}
		return marks[i].ID < marks[j].ID
	})
}
