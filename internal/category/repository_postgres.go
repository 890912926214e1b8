package category

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

const createCategoryTable = `
	CREATE TABLE IF NOT EXISTS category (
		slug TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		ord INT NOT NULL DEFAULT 0
	)
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createCategoryTable); err != nil {
		return fmt.Errorf("create category table: %w", err)
	}
	return nil
}

// List returns category rows ordered by `ord` then slug.
// If the table/query is not available the function returns an empty slice.
func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(`SELECT slug, name, description FROM category ORDER BY ord, slug`)
	if err != nil {
		return []Category{}, nil
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			c    Category
			desc sql.NullString
		)
		if err := rows.Scan(&c.Slug, &c.Name, &desc); err != nil {
			continue
		}
		c.Description = desc.String
		out = append(out, c)
	}
	return out, nil
}

func (r *PostgresRepository) GetBySlug(slug string) (Category, error) {
	var (
		c    Category
		desc sql.NullString
	)
	err := r.db.QueryRow(`SELECT slug, name, description FROM category WHERE lower(slug) = lower($1)`, slug).
		Scan(&c.Slug, &c.Name, &desc)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	c.Description = desc.String
	return c, nil
}

// Seed replaces the category rows, keeping the given order.
func (r *PostgresRepository) Seed(categories []Category) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM category`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for i, c := range categories {
		if _, err := tx.Exec(`INSERT INTO category (slug, name, description, ord) VALUES ($1, $2, $3, $4)`,
			c.Slug, c.Name, c.Description, i); err != nil {
			return fmt.Errorf("insert category %s: %w", c.Slug, err)
		}
	}
	return tx.Commit()
}
