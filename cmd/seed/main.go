// Command seed replaces the catalogue tables with the bundled data, or with
// a product list read from a JSON file.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quartzcompany/worktops-backend/internal/category"
	"github.com/quartzcompany/worktops-backend/internal/config"
	"github.com/quartzcompany/worktops-backend/internal/logger"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/promo"
)

func main() {
	productsFile := flag.String("products", "", "JSON file with the product list (defaults to the bundled catalogue)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(logger.Config{IsDevelopment: true, Encoding: "console", Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal("ping database", zap.Error(err))
	}

	products := product.Seed()
	if *productsFile != "" {
		products, err = readProducts(*productsFile)
		if err != nil {
			log.Fatal("read products", zap.String("file", *productsFile), zap.Error(err))
		}
	}

	if err := product.Migrate(db); err != nil {
		log.Fatal("migrate products", zap.Error(err))
	}
	if err := category.Migrate(db); err != nil {
		log.Fatal("migrate categories", zap.Error(err))
	}
	if err := promo.Migrate(db); err != nil {
		log.Fatal("migrate promo tiles", zap.Error(err))
	}

	if err := product.NewService(product.NewPostgresRepository(db)).ResetProducts(products); err != nil {
		log.Fatal("seed products", zap.Error(err))
	}
	if err := category.NewPostgresRepository(db).Seed(category.Defaults()); err != nil {
		log.Fatal("seed categories", zap.Error(err))
	}
	if err := promo.NewPostgresRepository(db).Seed(promo.Defaults()); err != nil {
		log.Fatal("seed promo tiles", zap.Error(err))
	}

	log.Info("catalogue seeded",
		zap.Int("products", len(products)),
		zap.Int("categories", len(category.Defaults())),
		zap.Int("promoTiles", len(promo.Defaults())),
	)
}

func readProducts(path string) ([]product.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var products []product.Product
	if err := json.NewDecoder(f).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}
