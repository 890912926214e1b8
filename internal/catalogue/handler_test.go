package catalogue

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/quartzcompany/worktops-backend/internal/category"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/promo"
)

func newTestApp() *fiber.App {
	h := NewHandler(
		product.NewService(product.NewInMemoryRepository(product.Seed())),
		promo.NewService(promo.NewInMemoryRepository(promo.Defaults())),
		category.NewService(category.NewInMemoryRepository(category.Defaults())),
	)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	return app
}

func getCatalogue(t *testing.T, app *fiber.App, url string) (int, catalogueResponse) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var body catalogueResponse
	if res.StatusCode == 200 {
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res.StatusCode, body
}

func TestGetCatalogue_All(t *testing.T) {
	status, body := getCatalogue(t, newTestApp(), "/api/v1/catalogue")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Category.Slug != category.AllSlug || body.Total != 12 {
		t.Fatalf("unexpected response: %+v", body)
	}
	if len(body.Items) != 15 || body.HasActiveFilters {
		t.Fatalf("expected 12 products and 3 tiles, got %d items", len(body.Items))
	}
}

func TestGetCatalogue_CategoryAndFilters(t *testing.T) {
	status, body := getCatalogue(t, newTestApp(), "/api/v1/catalogue/quartz?colour=white&colour=grey&sort=price-asc")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var got []int
	for _, it := range body.Items {
		if it.Type == ItemProduct {
			got = append(got, it.Product.ID)
		}
	}
	want := []int{12, 3, 4, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if !body.HasActiveFilters || body.Filters.ColourTones[0] != "White" {
		t.Fatalf("unexpected filters: %+v", body.Filters)
	}
}

func TestGetCatalogue_EmptyResultIsOK(t *testing.T) {
	status, body := getCatalogue(t, newTestApp(), "/api/v1/catalogue?colour=Green,Black&priceMax=10")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if body.Total != 0 || len(body.Items) != 0 || !body.HasActiveFilters {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestGetCatalogue_BadQuery(t *testing.T) {
	app := newTestApp()
	for _, url := range []string{
		"/api/v1/catalogue?colour=purple",
		"/api/v1/catalogue?sort=cheapest",
		"/api/v1/catalogue?priceMin=abc",
		"/api/v1/catalogue?priceMin=90&priceMax=10",
		"/api/v1/catalogue?page=0&pageSize=4",
		"/api/v1/catalogue?priceMin=NaN",
		"/api/v1/catalogue?priceMax=Inf",
		"/api/v1/catalogue?priceMax=-Inf",
	} {
		res, _ := app.Test(httptest.NewRequest("GET", url, nil))
		if res.StatusCode != 400 {
			t.Fatalf("%s: expected 400, got %d", url, res.StatusCode)
		}
		b, _ := io.ReadAll(res.Body)
		if !strings.Contains(string(b), `"errors"`) {
			t.Fatalf("%s: expected field errors, got %s", url, b)
		}
	}
}

func TestGetCatalogue_PageBeyondEnd(t *testing.T) {
	app := newTestApp()
	for _, url := range []string{
		"/api/v1/catalogue?page=9223372036854775807&pageSize=2",
		"/api/v1/catalogue?page=4&pageSize=4",
		"/api/v1/catalogue?page=2&pageSize=9223372036854775807",
	} {
		status, body := getCatalogue(t, app, url)
		if status != 200 {
			t.Fatalf("%s: expected 200, got %d", url, status)
		}
		if len(body.Items) != 0 || body.Total != 12 {
			t.Fatalf("%s: expected an empty page of 12, got %d items, total %d", url, len(body.Items), body.Total)
		}
	}
}

func TestGetCatalogue_UnknownCategory(t *testing.T) {
	status, _ := getCatalogue(t, newTestApp(), "/api/v1/catalogue/granite")
	if status != 404 {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestGetFacets(t *testing.T) {
	res, err := newTestApp().Test(httptest.NewRequest("GET", "/api/v1/catalogue/facets", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body struct {
		ColourTones []string `json:"colourTones"`
		PriceRange  struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"priceRange"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.ColourTones) != 6 || body.PriceRange.Min != 49 || body.PriceRange.Max != 105 {
		t.Fatalf("unexpected facets: %+v", body)
	}
}
