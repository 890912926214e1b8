package product

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

//go:embed data/products.json
var seedJSON []byte

// Seed returns the bundled catalogue. It panics only if the embedded file is
// malformed, which is a build defect.
func Seed() []Product {
	products, err := Decode(seedJSON)
	if err != nil {
		panic(fmt.Sprintf("product: embedded catalogue: %v", err))
	}
	return products
}

// Decode parses a JSON product array and validates it.
func Decode(b []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if err := ValidateCatalogue(products); err != nil {
		return nil, err
	}
	return products, nil
}

// CatalogueError lists every record problem found during validation.
type CatalogueError struct {
	Problems []string
}

func (e *CatalogueError) Error() string {
	return "invalid catalogue: " + strings.Join(e.Problems, "; ")
}

// ValidateCatalogue checks identity uniqueness, rating range and the sale
// invariant: onSale implies discount > 0 and originalPrice > pricePerSqm.
func ValidateCatalogue(products []Product) error {
	var problems []string
	ids := map[int]bool{}
	slugs := map[string]bool{}
	for _, p := range products {
		ref := fmt.Sprintf("product %d (%s)", p.ID, p.Slug)
		if p.ID <= 0 {
			problems = append(problems, ref+": id must be positive")
		}
		if ids[p.ID] {
			problems = append(problems, ref+": duplicate id")
		}
		ids[p.ID] = true
		if p.Slug == "" {
			problems = append(problems, ref+": slug is required")
		} else if slugs[p.Slug] {
			problems = append(problems, ref+": duplicate slug")
		}
		slugs[p.Slug] = true
		if p.Name == "" {
			problems = append(problems, ref+": name is required")
		}
		if p.PricePerSqm < 0 {
			problems = append(problems, ref+": pricePerSqm must be >= 0")
		}
		if p.Rating < 0 || p.Rating > 5 || math.Mod(p.Rating*2, 1) != 0 {
			problems = append(problems, ref+": rating must be 0-5 in half points")
		}
		if p.ReviewCount < 0 {
			problems = append(problems, ref+": reviewCount must be >= 0")
		}
		if p.OnSale {
			if p.Discount <= 0 {
				problems = append(problems, ref+": on sale without discount")
			}
			if p.OriginalPrice == nil || *p.OriginalPrice <= p.PricePerSqm {
				problems = append(problems, ref+": on sale but originalPrice is not above pricePerSqm")
			}
		}
	}
	if len(problems) > 0 {
		return &CatalogueError{Problems: problems}
	}
	return nil
}
