package promo

// Service provides business logic for promo tiles.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns the tiles to cycle through. A store that is empty or
// unavailable falls back to the built-in tiles so the grid always has
// something to show.
func (s *Service) List() []Tile {
	items, err := s.repo.List()
	if err != nil || len(items) == 0 {
		return Defaults()
	}
	return items
}
