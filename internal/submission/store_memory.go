package submission

import (
	"context"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records []Envelope
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, e Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, e)
	return nil
}

// List returns matching records newest first.
func (s *MemoryStore) List(_ context.Context, kind Kind) ([]Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Envelope, 0)
	for _, e := range s.records {
		if kind == "" || e.Kind == kind {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
