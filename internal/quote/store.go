package quote

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	mu   sync.Mutex
	flow *Flow
}

// Store keeps quote drafts in memory only. Each draft is serialised by its
// own lock so a slow submission does not hold up other visitors.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*entry
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a store whose drafts expire after ttl without activity.
func NewStore(ttl time.Duration) *Store {
	return &Store{drafts: map[string]*entry{}, ttl: ttl, now: time.Now}
}

func (s *Store) Create(preselected ...int) *Flow {
	f := NewFlow(uuid.NewString(), preselected...)
	s.mu.Lock()
	s.drafts[f.ID] = &entry{flow: f}
	s.mu.Unlock()
	return f.clone()
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return e, nil
}

// Get returns a copy of the draft.
func (s *Store) Get(id string) (*Flow, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flow.clone(), nil
}

// Update runs fn against the stored draft and returns a copy of the
// result, even when fn fails, so callers can render the draft's errors.
func (s *Store) Update(id string, fn func(f *Flow) error) (*Flow, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	err = fn(e.flow)
	return e.flow.clone(), err
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[id]
	delete(s.drafts, id)
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Sweep removes drafts idle for longer than the ttl and reports how many
// went. Drafts busy in an update are left for the next sweep.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.drafts {
		if !e.mu.TryLock() {
			continue
		}
		idle := e.flow.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
