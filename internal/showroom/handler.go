package showroom

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
	app.Get("/api/v1/showrooms", h.getShowrooms)
	app.Post("/api/v1/showrooms/bookings", h.book)
}

func (h *Handler) getShowrooms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"showrooms":   Showrooms,
		"timeSlots":   TimeSlots,
		"accessories": Accessories,
	})
}

func (h *Handler) book(c *fiber.Ctx) error {
	var body struct {
		Booking
		Website string `json:"website"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ref, errs, err := h.service.Book(c.UserContext(), body.Booking, body.Website, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":   "Sorry, we couldn't book your visit. Please try again.",
			"retryable": true,
		})
	}
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": ref})
}
