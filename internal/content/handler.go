package content

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quartzcompany/worktops-backend/internal/product"
)

type Handler struct {
	library  *Library
	products *product.Service
}

func NewHandler(library *Library, products *product.Service) *Handler {
	return &Handler{library: library, products: products}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/home", h.getHome)
	app.Get("/api/v1/blog", h.getPosts)
	app.Get("/api/v1/blog/:slug", h.getPost)
	app.Get("/api/v1/testimonials", h.getTestimonials)
	app.Get("/api/v1/materials/:type", h.getMaterial)
	app.Get("/api/v1/finance", h.getFinance)
	app.Get("/api/v1/coverage", h.getCoverage)
	app.Get("/api/v1/coverage/check", h.checkCoverage)
}

func (h *Handler) getHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"featured":     h.products.Featured(),
		"testimonials": h.library.Testimonials,
		"faqs":         HomeFAQs,
	})
}

func (h *Handler) getPosts(c *fiber.Ctx) error {
	posts := FilterPosts(h.library.Posts, c.Query("category"), c.Query("q"))
	return c.JSON(fiber.Map{
		"categories": BlogCategories,
		"tags":       PopularTags,
		"total":      len(posts),
		"posts":      posts,
	})
}

func (h *Handler) getPost(c *fiber.Ctx) error {
	post, err := h.library.PostBySlug(c.Params("slug"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Article not found", "back": "/inspiration"})
	}
	return c.JSON(fiber.Map{
		"post":       post,
		"paragraphs": Paragraphs(post.Content),
		"related":    h.library.RelatedPosts(post),
	})
}

func (h *Handler) getTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.library.Testimonials)
}

// getMaterial returns the overview for a material type with the products
// whose category equals that type.
func (h *Handler) getMaterial(c *fiber.Ctx) error {
	m, err := MaterialByType(c.Params("type"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Material not found", "back": "/colours"})
	}
	return c.JSON(fiber.Map{
		"material": m,
		"products": h.products.ByCategory(m.Type),
	})
}

func (h *Handler) getFinance(c *fiber.Ctx) error {
	cost := 0.0
	if raw := c.Query("cost"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"cost": "Please enter a valid amount."}})
		}
		cost = v
	}
	q, err := Calculate(cost)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"cost": "Please enter a valid amount."}})
	}
	return c.JSON(fiber.Map{"quote": q, "faqs": FinanceFAQs})
}

func (h *Handler) getCoverage(c *fiber.Ctx) error {
	return c.JSON(Regions)
}

func (h *Handler) checkCoverage(c *fiber.Ctx) error {
	cov, errs := CheckPostcode(c.Query("postcode"))
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.JSON(cov)
}
