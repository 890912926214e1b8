package quote

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/quotes", h.startQuote)
	app.Get("/api/v1/quotes/:id", h.getQuote)
	app.Put("/api/v1/quotes/:id/worktop", h.updateWorktop)
	app.Post("/api/v1/quotes/:id/attachment", h.uploadAttachment)
	app.Post("/api/v1/quotes/:id/back", h.back)
	app.Put("/api/v1/quotes/:id/contact", h.submitContact)
	app.Get("/api/v1/quotes/:id/summary.pdf", h.getSummary)
	app.Delete("/api/v1/quotes/:id", h.discard)
	app.Post("/api/v1/quote-requests", h.submitRequest)
}

// contactBody is the step two form, including the decoy field.
type contactBody struct {
	Contact
	Website string `json:"website"`
}

func (h *Handler) startQuote(c *fiber.Ctx) error {
	f, err := h.service.Start(c.Query("product"))
	if errors.Is(err, product.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found", "back": "/colours"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

func (h *Handler) getQuote(c *fiber.Ctx) error {
	f, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, f, err)
	}
	return c.JSON(f)
}

func (h *Handler) updateWorktop(c *fiber.Ctx) error {
	var w Worktop
	if err := c.BodyParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := h.service.UpdateWorktop(c.Params("id"), w)
	return respond(c, f, err)
}

func (h *Handler) uploadAttachment(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"file": "Please choose a file to upload."}})
	}
	f, err := h.service.Attach(c.UserContext(), c.Params("id"), file)
	if errors.Is(err, attachment.ErrFileTooLarge) || errors.Is(err, attachment.ErrUnsupportedFileType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": f.Errors, "quote": f})
	}
	return respond(c, f, err)
}

func (h *Handler) back(c *fiber.Ctx) error {
	f, err := h.service.Back(c.Params("id"))
	return respond(c, f, err)
}

func (h *Handler) submitContact(c *fiber.Ctx) error {
	var body contactBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := h.service.SubmitContact(c.UserContext(), c.Params("id"), body.Contact, body.Website, c.IP())
	return respond(c, f, err)
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	id := c.Params("id")
	b, err := h.service.Summary(id)
	if err != nil {
		return respondError(c, nil, err)
	}
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, id))
	c.Set("Cache-Control", "no-store")
	c.Type("pdf")
	return c.Send(b)
}

func (h *Handler) discard(c *fiber.Ctx) error {
	if !h.service.Discard(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrDraftNotFound.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) submitRequest(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	f, err := h.service.SubmitRequest(c.UserContext(), req, c.IP())
	if err == nil && f.Step == StepConfirmation {
		return c.Status(fiber.StatusCreated).JSON(f)
	}
	return respond(c, f, err)
}

// respond maps a flow and transition result onto the HTTP response: field
// errors are a 400 carrying the draft, a failed submission a retryable 502.
func respond(c *fiber.Ctx, f *Flow, err error) error {
	if err != nil {
		return respondError(c, f, err)
	}
	if len(f.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": f.Errors, "quote": f})
	}
	return c.JSON(f)
}

func respondError(c *fiber.Ctx, f *Flow, err error) error {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Quote not found. Please start again.", "back": "/quote"})
	case errors.Is(err, ErrInvalidStep):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error(), "quote": f})
	case errors.Is(err, ErrSubmitFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": f.SubmitError, "retryable": true, "quote": f})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
