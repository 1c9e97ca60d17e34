package timeline

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
	"github.com/msto63/gregor/pkg/datetime"
)

// MemoryStore implements Store in memory. It applies the same truncation as
// SQLiteStore so both behave alike.
type MemoryStore struct {
	mu    sync.RWMutex
	marks map[string]*Mark
	clock datetime.ClockSource
}

// NewMemoryStore creates an empty store stamping marks from clock; nil means
// the process clock.
func NewMemoryStore(clock datetime.ClockSource) *MemoryStore {
	if clock == nil {
		clock = datetime.Clock()
	}
	return &MemoryStore{marks: make(map[string]*Mark), clock: clock}
}

func (s *MemoryStore) Add(ctx context.Context, label string, at datetime.Datetime) (*Mark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, mdwerror.New("mark label must not be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timeline.Add")
	}

	mark := &Mark{
		ID:      uuid.New().String(),
		Label:   label,
		At:      truncate(at),
		Created: truncate(datetime.NowFrom(s.clock, datetime.UTC)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[mark.ID] = mark

	copied := *mark
	return &copied, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Mark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mark, ok := s.marks[id]
	if !ok {
		return nil, notFound(id, "timeline.Get")
	}
	copied := *mark
	return &copied, nil
}

func (s *MemoryStore) List(ctx context.Context, filter Filter) ([]*Mark, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	var marks []*Mark
	for _, m := range s.marks {
		if filter.matches(m) {
			copied := *m
			marks = append(marks, &copied)
		}
	}
	s.mu.RUnlock()

	sortMarks(marks)
	if filter.Limit > 0 && len(marks) > filter.Limit {
		marks = marks[:filter.Limit]
	}
	return marks, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.marks[id]; !ok {
		return notFound(id, "timeline.Delete")
	}
	delete(s.marks, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
