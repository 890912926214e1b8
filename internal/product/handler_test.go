package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	h := NewHandler(NewService(NewInMemoryRepository(Seed())), zap.NewNop())
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, h
}

func TestProductRoutes_Registered(t *testing.T) {
	app, _ := newTestApp(t)

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}
	for _, want := range []string{
		"GET /api/v1/products",
		"GET /api/v1/products/:slug",
		"GET /api/v1/products/:slug/gallery",
		"GET /api/v1/sale",
		"GET /api/v1/featured",
		"POST /api/v1/dev/reset-products",
	} {
		if !routes[want] {
			t.Fatalf("expected route %q to be registered", want)
		}
	}
}

func TestGetProduct_BySlug(t *testing.T) {
	app, _ := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/calacatta-gold", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body detailResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Product.ID != 1 {
		t.Fatalf("expected product 1, got %d", body.Product.ID)
	}
	if len(body.Related) != RelatedLimit {
		t.Fatalf("expected %d related, got %d", RelatedLimit, len(body.Related))
	}
	for _, r := range body.Related {
		if r.ID == 1 || r.Category != "quartz" {
			t.Fatalf("unexpected related product %+v", r)
		}
	}
	if len(body.FAQs) != 5 || !strings.Contains(body.FAQs[0].Question, "Calacatta Gold") {
		t.Fatalf("unexpected faqs: %+v", body.FAQs)
	}
	if body.MonthlyFrom != 8 {
		t.Fatalf("expected monthlyFrom 8, got %d", body.MonthlyFrom)
	}
}

func TestGetProduct_UnknownSlug(t *testing.T) {
	app, _ := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/no-such-stone", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"back":"/colours"`) {
		t.Fatalf("expected recovery link in body, got %s", b)
	}
}

func TestGetGalleryImage_Wraps(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		query string
		index int
	}{
		{"?index=1&dir=next", 0},
		{"?index=0&dir=prev", 1},
		{"?index=0", 1},
	}
	for _, tc := range cases {
		res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/calacatta-gold/gallery"+tc.query, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		var body struct {
			Index int    `json:"index"`
			Image string `json:"image"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Index != tc.index {
			t.Fatalf("%s: expected index %d, got %d", tc.query, tc.index, body.Index)
		}
		if body.Image == "" {
			t.Fatalf("%s: expected an image path", tc.query)
		}
	}

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products/calacatta-gold/gallery?dir=sideways", nil))
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for bad dir, got %d", res.StatusCode)
	}
}

func TestGetSale_OnlySaleProducts(t *testing.T) {
	app, _ := newTestApp(t)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/sale", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 sale products, got %d", len(products))
	}
	for _, p := range products {
		if !p.OnSale || p.OriginalPrice == nil || *p.OriginalPrice <= p.PricePerSqm {
			t.Fatalf("product %d violates sale invariant", p.ID)
		}
	}
}

func TestGetProducts_ByCategory(t *testing.T) {
	app, _ := newTestApp(t)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products?category=Printed-Quartz", nil))
	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 printed quartz products, got %d", len(products))
	}
}

func TestResetProducts(t *testing.T) {
	app, h := newTestApp(t)

	res, _ := app.Test(httptest.NewRequest("POST", "/api/v1/dev/reset-products", nil))
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 when reset disabled, got %d", res.StatusCode)
	}

	h.AllowReset = true
	payload := `[{"id":1,"slug":"only-one","name":"Only One","pricePerSqm":50,"rating":4}]`
	req := httptest.NewRequest("POST", "/api/v1/dev/reset-products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if got := len(h.service.List()); got != 1 {
		t.Fatalf("expected 1 product after reset, got %d", got)
	}

	bad := `[{"id":1,"slug":"a","name":"A","pricePerSqm":50,"onSale":true,"discount":0}]`
	req = httptest.NewRequest("POST", "/api/v1/dev/reset-products", strings.NewReader(bad))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 for sale without discount, got %d", res.StatusCode)
	}
	if got := len(h.service.List()); got != 1 {
		t.Fatalf("rejected reset must not change catalogue, got %d products", got)
	}
}
