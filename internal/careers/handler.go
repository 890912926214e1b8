package careers

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
	app.Get("/api/v1/careers/vacancies", h.getVacancies)
	app.Post("/api/v1/careers/applications", h.apply)
}

func (h *Handler) getVacancies(c *fiber.Ctx) error {
	return c.JSON(Vacancies)
}

// apply accepts a multipart application with the CV in the "cv" part.
func (h *Handler) apply(c *fiber.Ctx) error {
	var a Application
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	cv, err := c.FormFile("cv")
	if err != nil {
		cv = nil
	}

	ref, errs, err := h.service.Apply(c.UserContext(), a, cv, c.FormValue("website"), c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":   "Sorry, we couldn't send your application. Please try again.",
			"retryable": true,
		})
	}
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": ref})
}
