package catalogue

import (
	"fmt"
	"strings"
)

// SortKey selects the single comparator applied after filtering.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// SortOption is a sort key with its storefront label.
type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

var SortOptions = []SortOption{
	{SortPopular, "Popular"},
	{SortPriceAsc, "Price Low–High"},
	{SortPriceDesc, "Price High–Low"},
	{SortRating, "Rating"},
	{SortNewest, "Newest"},
}

// ParseSortKey accepts any listed key; an empty string is the default sort.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortPopular, nil
	}
	for _, o := range SortOptions {
		if string(o.Value) == s {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// Facet values offered by the filter sidebar.
var (
	ColourTones  = []string{"White", "Grey", "Black", "Beige", "Cream", "Green"}
	PatternTypes = []string{"Veined", "Speckled", "Plain", "Concrete", "Fine-grain"}
	Brands       = []string{"The Quartz Company"}
)

// AllCategory disables the category filter.
const AllCategory = "all"

// FilterState is the catalogue selection sent by the storefront. It is
// built per request and never stored.
type FilterState struct {
	Category     string   `json:"category"`
	ColourTones  []string `json:"colourTones"`
	PatternTypes []string `json:"patternTypes"`
	Brands       []string `json:"brands"`
	PriceMin     *float64 `json:"priceMin,omitempty"`
	PriceMax     *float64 `json:"priceMax,omitempty"`
	Sort         SortKey  `json:"sort"`
}

// HasActiveFilters reports whether any facet or price bound narrows the
// list. Category and sort do not count.
func HasActiveFilters(f FilterState) bool {
	return len(f.ColourTones) > 0 ||
		len(f.PatternTypes) > 0 ||
		len(f.Brands) > 0 ||
		f.PriceMin != nil ||
		f.PriceMax != nil
}

// CanonicalColourTone maps a tone to its enumeration label, ignoring case.
func CanonicalColourTone(s string) (string, bool) {
	return canonical(ColourTones, s)
}

// CanonicalPatternType maps a pattern to its enumeration label, ignoring case.
func CanonicalPatternType(s string) (string, bool) {
	return canonical(PatternTypes, s)
}

func canonical(values []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
