package catalogue

import (
	"sort"
	"strings"

	"github.com/quartzcompany/worktops-backend/internal/product"
)

// VisibleProducts returns the products to display for f, in display order.
// Filters run in a fixed order: category, colour tone, pattern type, brand,
// price range; then exactly one stable sort. all is never modified.
func VisibleProducts(all []product.Product, f FilterState) []product.Product {
	list := make([]product.Product, 0, len(all))
	for _, p := range all {
		if matches(p, f) {
			list = append(list, p)
		}
	}
	sortProducts(list, f.Sort)
	return list
}

func matches(p product.Product, f FilterState) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, AllCategory) {
		if !strings.EqualFold(p.Category, f.Category) && !strings.EqualFold(p.PatternType, f.Category) {
			return false
		}
	}
	if len(f.ColourTones) > 0 && !containsFold(f.ColourTones, p.ColorTone) {
		return false
	}
	if len(f.PatternTypes) > 0 && !containsFold(f.PatternTypes, p.PatternType) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}
	if f.PriceMin != nil && p.PricePerSqm < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.PricePerSqm > *f.PriceMax {
		return false
	}
	return true
}

func sortProducts(list []product.Product, key SortKey) {
	var less func(a, b product.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b product.Product) bool { return a.PricePerSqm < b.PricePerSqm }
	case SortPriceDesc:
		less = func(a, b product.Product) bool { return a.PricePerSqm > b.PricePerSqm }
	case SortRating:
		less = func(a, b product.Product) bool { return a.Rating > b.Rating }
	case SortNewest:
		less = func(a, b product.Product) bool { return a.New && !b.New }
	default:
		less = func(a, b product.Product) bool {
			if a.Popular != b.Popular {
				return a.Popular
			}
			return a.ReviewCount > b.ReviewCount
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
