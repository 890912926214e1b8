package newsletter

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/newsletter", h.subscribe)
}

func (h *Handler) subscribe(c *fiber.Ctx) error {
	var body struct {
		Email   string `json:"email"`
		Website string `json:"website"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ref, existing, errs, err := h.service.Subscribe(c.UserContext(), body.Email, body.Website, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":   "Sorry, we couldn't sign you up. Please try again.",
			"retryable": true,
		})
	}
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	if existing {
		return c.JSON(fiber.Map{"reference": ref, "alreadySubscribed": true})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": ref})
}
