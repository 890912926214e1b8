package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/categories/:slug", h.getCategory)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	item, err := h.service.Resolve(c.Params("slug"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found", "back": "/colours"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(item)
}
