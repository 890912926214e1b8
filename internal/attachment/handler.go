package attachment

import (
	"context"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Linker resolves a stored key to a link staff can open.
type Linker interface {
	URL(ctx context.Context, key string) (string, error)
}

type Handler struct {
	links Linker
	log   *zap.Logger
}

func NewHandler(links Linker, log *zap.Logger) *Handler {
	return &Handler{links: links, log: log}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/uploads/*", h.openUpload)
}

// openUpload redirects to the stored file, e.g. a kitchen plan attached to
// a quote request.
func (h *Handler) openUpload(c *fiber.Ctx) error {
	key := strings.TrimPrefix(path.Clean("/"+c.Params("*")), "/")
	if key == "" || key == "." {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing upload key"})
	}
	url, err := h.links.URL(c.UserContext(), key)
	if err != nil {
		h.log.Error("resolve upload link", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "upload unavailable", "retryable": true})
	}
	return c.Redirect(url, fiber.StatusFound)
}
