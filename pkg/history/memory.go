package history

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps runs in memory.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*Run)}
}

func (s *MemoryStore) Save(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *run
	s.runs[run.ID] = &cp
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *run
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Run, error) {
	s.mu.RLock()
	runs := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		cp := *run
		runs = append(runs, &cp)
	}
	s.mu.RUnlock()

	sortNewestFirst(runs)
	if n := listLimit(limit); len(runs) > n {
		runs = runs[:n]
	}
	return runs, nil
}

func (s *MemoryStore) Close() error { return nil }

// sortNewestFirst orders runs by creation time, newest first, breaking
// ties by ID.
func sortNewestFirst(runs []*Run) {
	slices.SortFunc(runs, func(a, b *Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}

var _ Store = (*MemoryStore)(nil)
