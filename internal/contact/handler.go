package contact

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
	app.Get("/api/v1/contact/subjects", h.getSubjects)
	app.Get("/api/v1/contact/faqs", h.getFAQs)
	app.Post("/api/v1/contact", h.sendMessage)
}

type messageBody struct {
	Message
	Website string `json:"website"`
}

func (h *Handler) getSubjects(c *fiber.Ctx) error {
	return c.JSON(Subjects)
}

func (h *Handler) getFAQs(c *fiber.Ctx) error {
	return c.JSON(FAQs)
}

func (h *Handler) sendMessage(c *fiber.Ctx) error {
	var body messageBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	ref, errs, err := h.service.Send(c.UserContext(), body.Message, body.Website, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":   "Sorry, we couldn't send your message. Please try again.",
			"retryable": true,
		})
	}
	if !errs.Empty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": ref})
}
