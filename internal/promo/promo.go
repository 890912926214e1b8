package promo

// Tile is a promotional card shown between products in the catalogue grid.
type Tile struct {
	ID       string `json:"id"`
	Headline string `json:"headline"`
	CTA      string `json:"cta"`
	Link     string `json:"link"`
	Variant  string `json:"variant"`
}

// Defaults are the tiles in the order they cycle through the grid.
func Defaults() []Tile {
	return []Tile{
		{ID: "promo-1", Headline: "Free Design Consultation", CTA: "Book Now", Link: "/contact", Variant: "teal"},
		{ID: "promo-2", Headline: "Order Free Samples", CTA: "Delivered in 48hrs", Link: "/colours", Variant: "gold"},
		{ID: "promo-3", Headline: "25 Year Warranty", CTA: "Peace of Mind", Link: "/warranty", Variant: "teal"},
	}
}
