package catalogue

import (
	"fmt"

	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/promo"
)

// TileEvery is the number of products between promo tiles.
const TileEvery = 4

const (
	ItemProduct = "product"
	ItemPromo   = "promo"
)

// GridItem is one cell of the rendered catalogue grid.
type GridItem struct {
	Type    string           `json:"type"`
	Key     string           `json:"key"`
	Product *product.Product `json:"product,omitempty"`
	Promo   *promo.Tile      `json:"promo,omitempty"`
}

// Interleave builds the display grid, placing one tile after every
// TileEvery-th product and cycling through tiles. products is not modified.
func Interleave(products []product.Product, tiles []promo.Tile) []GridItem {
	return interleaveFrom(products, tiles, 0)
}

// interleaveFrom starts the tile cycle at the given position, so that a page
// window continues the cycle of the pages before it.
func interleaveFrom(products []product.Product, tiles []promo.Tile, tileIndex int) []GridItem {
	items := make([]GridItem, 0, len(products)+len(products)/TileEvery)
	for i := range products {
		p := products[i]
		items = append(items, GridItem{Type: ItemProduct, Key: fmt.Sprintf("product-%d", p.ID), Product: &p})

		if len(tiles) > 0 && (i+1)%TileEvery == 0 {
			t := tiles[tileIndex%len(tiles)]
			items = append(items, GridItem{Type: ItemPromo, Key: fmt.Sprintf("%s-%d", t.ID, tileIndex), Promo: &t})
			tileIndex++
		}
	}
	return items
}

// Page is a window over the visible product list.
type Page struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Total    int `json:"total"`
	start    int
	end      int
}

// Paginate computes the window for page (1-based) of size. A size of zero
// or less disables paging. Pages beyond the end are empty.
func Paginate(total, page, size int) Page {
	if size <= 0 {
		return Page{Page: 1, PageSize: total, Pages: 1, Total: total, start: 0, end: total}
	}
	if page < 1 {
		page = 1
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		return Page{Page: page, PageSize: size, Pages: pages, Total: total, start: total, end: total}
	}
	// page <= pages keeps start within total, so neither sum below overflows
	start := (page - 1) * size
	end := total
	if size < total-start {
		end = start + size
	}
	return Page{Page: page, PageSize: size, Pages: pages, Total: total, start: start, end: end}
}

// Window returns the slice of products covered by the page.
func (pg Page) Window(products []product.Product) []product.Product {
	return products[pg.start:pg.end]
}

// Grid interleaves promo tiles into the page window, continuing the tile
// cycle from earlier pages.
func (pg Page) Grid(products []product.Product, tiles []promo.Tile) []GridItem {
	return interleaveFrom(pg.Window(products), tiles, pg.start/TileEvery)
}
