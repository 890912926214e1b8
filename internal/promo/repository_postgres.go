package promo

import (
	"database/sql"
	"fmt"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const createPromoTable = `
	CREATE TABLE IF NOT EXISTS promo_tile (
		promo_id TEXT PRIMARY KEY,
		headline TEXT NOT NULL,
		cta TEXT,
		link TEXT,
		variant TEXT,
		ord INT NOT NULL DEFAULT 0
	)
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createPromoTable); err != nil {
		return fmt.Errorf("create promo_tile table: %w", err)
	}
	return nil
}

// List returns tiles from `promo_tile` ordered by `ord` then id.
// If the table/query is not available the function returns an empty slice.
func (r *PostgresRepository) List() ([]Tile, error) {
	rows, err := r.db.Query(`SELECT promo_id, headline, cta, link, variant FROM promo_tile ORDER BY ord, promo_id`)
	if err != nil {
		return []Tile{}, nil
	}
	defer rows.Close()

	out := make([]Tile, 0)
	for rows.Next() {
		var (
			t                  Tile
			cta, link, variant sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Headline, &cta, &link, &variant); err != nil {
			continue
		}
		t.CTA = cta.String
		t.Link = link.String
		t.Variant = variant.String
		out = append(out, t)
	}
	return out, nil
}

// Seed replaces the tile rows, keeping the given order.
func (r *PostgresRepository) Seed(tiles []Tile) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM promo_tile`); err != nil {
		return fmt.Errorf("clear promo tiles: %w", err)
	}
	for i, t := range tiles {
		if _, err := tx.Exec(`INSERT INTO promo_tile (promo_id, headline, cta, link, variant, ord) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, t.Headline, t.CTA, t.Link, t.Variant, i); err != nil {
			return fmt.Errorf("insert promo tile %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}
