package promo

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

func TestGetPromos(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(Defaults())))
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/promos", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var tiles []Tile
	if err := json.NewDecoder(res.Body).Decode(&tiles); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tiles) != 3 || tiles[1].Variant != "gold" {
		t.Fatalf("unexpected tiles: %+v", tiles)
	}
}

func TestService_EmptyStoreFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM promo_tile").WillReturnError(errors.New("no such table"))
	tiles := NewService(NewPostgresRepository(db)).List()
	if len(tiles) != 3 || tiles[0].ID != "promo-1" {
		t.Fatalf("expected default tiles, got %+v", tiles)
	}
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"promo_id", "headline", "cta", "link", "variant"}).
		AddRow("spring", "Spring Sale", "Shop now", "/sale", nil)
	mock.ExpectQuery("FROM promo_tile ORDER BY ord").WillReturnRows(rows)

	tiles, err := NewPostgresRepository(db).List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tiles) != 1 || tiles[0].Variant != "" || tiles[0].Link != "/sale" {
		t.Fatalf("unexpected tiles: %+v", tiles)
	}
}
