package promo

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/promos", h.getPromos)
}

func (h *Handler) getPromos(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
