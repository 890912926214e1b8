package product

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	// Reset replaces the whole catalogue (seeding and the dev reset endpoint).
	Reset(products []Product) error
}

// InMemoryRepository holds the catalogue loaded at startup. It is the default
// store when no database is configured and is what tests seed.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	bySlug   map[string]int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.load(seed)
	return r
}

// load must be called with mu held for writing (or before r is shared).
func (r *InMemoryRepository) load(products []Product) {
	r.products = append(make([]Product, 0, len(products)), products...)
	r.bySlug = make(map[string]int, len(products))
	for i, p := range r.products {
		r.bySlug[p.Slug] = i
	}
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.bySlug[slug]
	if !ok {
		return Product{}, ErrNotFound
	}
	return r.products[i], nil
}

func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(products)
	return nil
}
