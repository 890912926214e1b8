package web

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the storefront build and the health check. Register it
// after every API route.
type Handler struct {
	dir   string
	index []byte
}

// NewHandler reads index.html from dir once. A missing build is logged and
// page requests then get a JSON 404.
func NewHandler(dir string, log *zap.Logger) *Handler {
	h := &Handler{dir: dir}
	if dir == "" {
		return h
	}
	b, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		log.Warn("storefront build not found", zap.String("dir", dir), zap.Error(err))
		return h
	}
	h.index = b
	return h
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/health", h.health)
	app.Get("/api/v1/routes", h.getRoutes)
	app.All("/api/*", apiNotFound)
	if h.dir != "" {
		app.Static("/", h.dir)
	}
	app.Get("/*", h.page)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) getRoutes(c *fiber.Ctx) error {
	return c.JSON(Routes)
}

func apiNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
}

// page answers client-side routes with the SPA shell. Unknown paths get the
// same shell with a 404 so the app renders its not-found view.
func (h *Handler) page(c *fiber.Ctx) error {
	status := fiber.StatusOK
	if _, ok := Match(c.Path()); !ok {
		status = fiber.StatusNotFound
	}
	if h.index == nil || (status == fiber.StatusNotFound && strings.Contains(filepath.Base(c.Path()), ".")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found", "back": "/"})
	}
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Type("html")
	return c.Status(status).Send(h.index)
}
