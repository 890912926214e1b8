package category

import "strings"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List() []Category {
	items, err := s.repo.List()
	if err != nil {
		return []Category{}
	}
	return items
}

// Resolve maps a catalogue route segment to its category. An empty slug is
// the "all" category.
func (s *Service) Resolve(slug string) (Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = AllSlug
	}
	return s.repo.GetBySlug(slug)
}
