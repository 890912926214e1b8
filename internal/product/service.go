package product

import (
	"math"
	"strings"
)

const (
	// RelatedLimit caps the "you may also like" strip on the detail page.
	RelatedLimit = 4
	// FeaturedLimit caps the home page featured grid.
	FeaturedLimit = 6
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Resolve looks a product up by slug. ErrNotFound is an expected outcome.
func (s *Service) Resolve(slug string) (Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetBySlug(slug)
}

// Related returns products in the same category as p, excluding p itself,
// in catalogue order.
func (s *Service) Related(p Product) []Product {
	return Related(s.repo.List(), p, RelatedLimit)
}

// OnSale returns the sale page listing.
func (s *Service) OnSale() []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.OnSale {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns products whose material category equals category,
// case-insensitively.
func (s *Service) ByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Featured lists popular products first, padded with the rest of the
// catalogue up to FeaturedLimit.
func (s *Service) Featured() []Product {
	all := s.repo.List()
	out := make([]Product, 0, FeaturedLimit)
	for _, p := range all {
		if len(out) == FeaturedLimit {
			return out
		}
		if p.Popular {
			out = append(out, p)
		}
	}
	for _, p := range all {
		if len(out) == FeaturedLimit {
			break
		}
		if !p.Popular {
			out = append(out, p)
		}
	}
	return out
}

// ResetProducts validates and replaces the catalogue.
func (s *Service) ResetProducts(products []Product) error {
	if err := ValidateCatalogue(products); err != nil {
		return err
	}
	return s.repo.Reset(products)
}

// Related is the pure form of Service.Related.
func Related(all []Product, p Product, limit int) []Product {
	out := make([]Product, 0, limit)
	for _, candidate := range all {
		if len(out) == limit {
			break
		}
		if candidate.ID != p.ID && candidate.Category == p.Category {
			out = append(out, candidate)
		}
	}
	return out
}

// MonthlyFrom is the "from £x/month" figure shown next to the price.
func MonthlyFrom(p Product) int {
	return int(math.Ceil(p.PricePerSqm / 12))
}
