package submission

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	recorder *Recorder
	spam     *SpamCounter
}

func NewHandler(recorder *Recorder, spam *SpamCounter) *Handler {
	return &Handler{recorder: recorder, spam: spam}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/submissions", h.listSubmissions)
	app.Get("/api/v1/admin/spam", h.getSpam)
}

func (h *Handler) listSubmissions(c *fiber.Ctx) error {
	kind := Kind(c.Query("kind"))
	if kind != "" {
		if _, ok := referencePrefix[kind]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"kind": "Unknown submission kind."}})
		}
	}
	items, err := h.recorder.List(c.UserContext(), kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getSpam(c *fiber.Ctx) error {
	return c.JSON(h.spam.Snapshot())
}
