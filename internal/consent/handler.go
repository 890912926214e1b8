package consent

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	// Secure marks the consent cookie HTTPS-only.
	Secure bool
}

func NewHandler(secure bool) *Handler {
	return &Handler{Secure: secure}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/consent", h.getConsent)
	app.Post("/api/v1/consent", h.saveConsent)
}

func (h *Handler) getConsent(c *fiber.Ctx) error {
	return c.JSON(Decode(c.Cookies(CookieName)))
}

func (h *Handler) saveConsent(c *fiber.Ctx) error {
	var u Update
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	prefs := Decode(c.Cookies(CookieName)).Apply(u)

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    Encode(prefs),
		Path:     "/",
		Expires:  time.Now().Add(MaxAge),
		MaxAge:   int(MaxAge.Seconds()),
		Secure:   h.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(prefs)
}
