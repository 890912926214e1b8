package product

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createProductTable = `
		CREATE TABLE IF NOT EXISTS product (
			id INT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			material TEXT,
			collection TEXT,
			category TEXT,
			brand TEXT,
			pattern_type TEXT,
			color_tone TEXT,
			description TEXT,
			features TEXT[] NOT NULL DEFAULT '{}',
			price_per_sqm DOUBLE PRECISION NOT NULL DEFAULT 0,
			original_price DOUBLE PRECISION,
			on_sale BOOLEAN NOT NULL DEFAULT FALSE,
			discount INT NOT NULL DEFAULT 0,
			popular BOOLEAN NOT NULL DEFAULT FALSE,
			is_new BOOLEAN NOT NULL DEFAULT FALSE,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			images TEXT[] NOT NULL DEFAULT '{}',
			spec_material TEXT,
			spec_finish TEXT,
			spec_thicknesses TEXT[] NOT NULL DEFAULT '{}',
			spec_slab_size TEXT,
			spec_weight TEXT,
			spec_lead_time TEXT,
			ord INT NOT NULL DEFAULT 0
		)
	`
	productColumns = `id, slug, name, material, collection, category, brand, pattern_type, color_tone, description,
		features, price_per_sqm, original_price, on_sale, discount, popular, is_new, rating, review_count, images,
		spec_material, spec_finish, spec_thicknesses, spec_slab_size, spec_weight, spec_lead_time`

	listProductsQuery      = `SELECT ` + productColumns + ` FROM product ORDER BY ord, id`
	getProductByIDQuery    = `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	getProductBySlugQuery  = `SELECT ` + productColumns + ` FROM product WHERE slug = $1`
	deleteAllProductsQuery = `DELETE FROM product`
	insertProductQuery     = `
		INSERT INTO product (` + productColumns + `, ord)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate creates the product table when missing.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createProductTable); err != nil {
		return fmt.Errorf("create product table: %w", err)
	}
	return nil
}

// List returns the catalogue in display order. Rows that fail to scan are
// skipped and a failed query yields an empty catalogue.
func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductBySlugQuery, slug))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

// Reset replaces the table contents inside one transaction so readers never
// observe a half-written catalogue.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteAllProductsQuery); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	for i, p := range products {
		var orig sql.NullFloat64
		if p.OriginalPrice != nil {
			orig = sql.NullFloat64{Float64: *p.OriginalPrice, Valid: true}
		}
		_, err := tx.Exec(insertProductQuery,
			p.ID, p.Slug, p.Name, p.Material, p.Collection, p.Category, p.Brand, p.PatternType, p.ColorTone, p.Description,
			pq.Array(p.Features), p.PricePerSqm, orig, p.OnSale, p.Discount, p.Popular, p.New, p.Rating, p.ReviewCount, pq.Array(p.Images),
			p.Specs.Material, p.Specs.Finish, pq.Array(p.Specs.Thicknesses), p.Specs.SlabSize, p.Specs.Weight, p.Specs.LeadTime,
			i,
		)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p                                      Product
		material, collection, category, brand  sql.NullString
		pattern, tone, desc                    sql.NullString
		orig                                   sql.NullFloat64
		specMaterial, specFinish, slab, weight sql.NullString
		lead                                   sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &material, &collection, &category, &brand, &pattern, &tone, &desc,
		pq.Array(&p.Features), &p.PricePerSqm, &orig, &p.OnSale, &p.Discount, &p.Popular, &p.New, &p.Rating, &p.ReviewCount, pq.Array(&p.Images),
		&specMaterial, &specFinish, pq.Array(&p.Specs.Thicknesses), &slab, &weight, &lead,
	)
	if err != nil {
		return Product{}, err
	}
	p.Material = material.String
	p.Collection = collection.String
	p.Category = category.String
	p.Brand = brand.String
	p.PatternType = pattern.String
	p.ColorTone = tone.String
	p.Description = desc.String
	if orig.Valid {
		v := orig.Float64
		p.OriginalPrice = &v
	}
	p.Specs.Material = specMaterial.String
	p.Specs.Finish = specFinish.String
	p.Specs.SlabSize = slab.String
	p.Specs.Weight = weight.String
	p.Specs.LeadTime = lead.String
	return p, nil
}
