package promo

import "sync"

// Repository provides access to promo tiles in display order.
type Repository interface {
	List() ([]Tile, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Tile
}

func NewInMemoryRepository(seed []Tile) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Tile, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Tile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tile, len(r.storage))
	copy(out, r.storage)
	return out, nil
}
