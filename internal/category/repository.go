package category

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("category not found")

// Repository provides access to categories.
type Repository interface {
	List() ([]Category, error)
	GetBySlug(slug string) (Category, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Category, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if strings.EqualFold(c.Slug, slug) {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}
