package catalogue

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quartzcompany/worktops-backend/internal/category"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/promo"
	"github.com/quartzcompany/worktops-backend/internal/validate"
)

type Handler struct {
	products   *product.Service
	promos     *promo.Service
	categories *category.Service
}

func NewHandler(products *product.Service, promos *promo.Service, categories *category.Service) *Handler {
	return &Handler{products: products, promos: promos, categories: categories}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// facets must be registered before the :category route
	app.Get("/api/v1/catalogue/facets", h.getFacets)
	app.Get("/api/v1/catalogue", h.getCatalogue)
	app.Get("/api/v1/catalogue/:category", h.getCatalogue)
}

type catalogueResponse struct {
	Category         category.Category `json:"category"`
	Filters          FilterState       `json:"filters"`
	Total            int               `json:"total"`
	HasActiveFilters bool              `json:"hasActiveFilters"`
	Page             Page              `json:"page"`
	Items            []GridItem        `json:"items"`
}

func (h *Handler) getCatalogue(c *fiber.Ctx) error {
	cat, err := h.categories.Resolve(c.Params("category"))
	if errors.Is(err, category.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found", "back": "/colours"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	f, page, size, errs := parseFilterState(c)
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	f.Category = cat.Slug

	visible := VisibleProducts(h.products.List(), f)
	pg := Paginate(len(visible), page, size)

	return c.JSON(catalogueResponse{
		Category:         cat,
		Filters:          f,
		Total:            len(visible),
		HasActiveFilters: HasActiveFilters(f),
		Page:             pg,
		Items:            pg.Grid(visible, h.promos.List()),
	})
}

func (h *Handler) getFacets(c *fiber.Ctx) error {
	all := h.products.List()
	priceMin, priceMax := 0.0, 0.0
	for i, p := range all {
		if i == 0 || p.PricePerSqm < priceMin {
			priceMin = p.PricePerSqm
		}
		if p.PricePerSqm > priceMax {
			priceMax = p.PricePerSqm
		}
	}
	return c.JSON(fiber.Map{
		"categories":   h.categories.List(),
		"colourTones":  ColourTones,
		"patternTypes": PatternTypes,
		"brands":       Brands,
		"sortOptions":  SortOptions,
		"priceRange":   fiber.Map{"min": priceMin, "max": priceMax},
	})
}

// parseFilterState reads the query string. Facet parameters may repeat or be
// comma separated.
func parseFilterState(c *fiber.Ctx) (FilterState, int, int, validate.FieldErrors) {
	errs := validate.FieldErrors{}
	var f FilterState

	for _, v := range multiQuery(c, "colour") {
		tone, ok := CanonicalColourTone(v)
		if !ok {
			errs.Add("colour", fmt.Sprintf("Unknown colour tone %q.", v))
			continue
		}
		f.ColourTones = append(f.ColourTones, tone)
	}
	for _, v := range multiQuery(c, "pattern") {
		pattern, ok := CanonicalPatternType(v)
		if !ok {
			errs.Add("pattern", fmt.Sprintf("Unknown pattern type %q.", v))
			continue
		}
		f.PatternTypes = append(f.PatternTypes, pattern)
	}
	f.Brands = multiQuery(c, "brand")

	f.PriceMin = parsePrice(c, "priceMin", errs)
	f.PriceMax = parsePrice(c, "priceMax", errs)
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		errs.Add("priceMax", "Maximum price must not be below the minimum.")
	}

	sortKey, err := ParseSortKey(c.Query("sort"))
	if err != nil {
		errs.Add("sort", "Unknown sort option.")
	}
	f.Sort = sortKey

	page, size := 1, 0
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs.Add("page", "Page must be a positive number.")
		}
		page = n
	}
	if v := c.Query("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs.Add("pageSize", "Page size must be a positive number.")
		}
		size = n
	}
	return f, page, size, errs
}

func parsePrice(c *fiber.Ctx, key string, errs validate.FieldErrors) *float64 {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		errs.Add(key, "Price must be a non-negative number.")
		return nil
	}
	return &n
}

func multiQuery(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
