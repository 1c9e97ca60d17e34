package calview

import (
	"github.com/msto63/gregor/internal/timeline"
	"github.com/msto63/gregor/pkg/datetime"
)

// marksLoadedMsg carries the marks of one displayed month
type marksLoadedMsg struct {
	month datetime.Date
	marks []*timeline.Mark
	err   error
}
