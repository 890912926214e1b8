package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger

	// AllowReset gates the catalogue reset endpoint on top of admin auth.
	AllowReset bool
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:slug", h.getProduct)
	app.Get("/api/v1/products/:slug/gallery", h.getGalleryImage)
	app.Get("/api/v1/sale", h.getSale)
	app.Get("/api/v1/featured", h.getFeatured)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/dev/reset-products", h.resetProducts)
}

type detailResponse struct {
	Product     Product   `json:"product"`
	Related     []Product `json:"related"`
	FAQs        []FAQ     `json:"faqs"`
	MonthlyFrom int       `json:"monthlyFrom"`
}

// notFound is the recovery response the storefront renders as its
// "not found" view with a link back to the catalogue.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Product not found",
		"back":    "/colours",
	})
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ByCategory(cat))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.Resolve(c.Params("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(detailResponse{
		Product:     p,
		Related:     h.service.Related(p),
		FAQs:        FAQs(p.Name),
		MonthlyFrom: MonthlyFrom(p),
	})
}

// getGalleryImage moves the displayed image index one step in either
// direction; the client keeps the current index.
func (h *Handler) getGalleryImage(c *fiber.Ctx) error {
	p, err := h.service.Resolve(c.Params("slug"))
	if err != nil {
		return notFound(c)
	}
	index, err := strconv.Atoi(c.Query("index", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "index must be a number"})
	}

	switch c.Query("dir", "next") {
	case "next":
		index = NextImage(index, len(p.Images))
	case "prev":
		index = PrevImage(index, len(p.Images))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "dir must be next or prev"})
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[index]
	}
	return c.JSON(fiber.Map{"index": index, "image": image, "count": len(p.Images)})
}

func (h *Handler) getSale(c *fiber.Ctx) error {
	return c.JSON(h.service.OnSale())
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	return c.JSON(h.service.Featured())
}

// resetProducts replaces the catalogue with the posted list, or with the
// bundled seed when the body is empty.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if !h.AllowReset {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "reset not allowed"})
	}

	var products []Product
	if len(c.Body()) == 0 {
		products = Seed()
	} else if err := c.BodyParser(&products); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.ResetProducts(products); err != nil {
		var ce *CatalogueError
		if errors.As(err, &ce) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid catalogue", "problems": ce.Problems})
		}
		h.log.Error("reset products failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	h.log.Info("catalogue reset", zap.Int("products", len(products)))
	return c.JSON(fiber.Map{"products": len(products)})
}
