package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quartzcompany/worktops-backend/internal/admin"
	"github.com/quartzcompany/worktops-backend/internal/attachment"
	"github.com/quartzcompany/worktops-backend/internal/careers"
	"github.com/quartzcompany/worktops-backend/internal/catalogue"
	"github.com/quartzcompany/worktops-backend/internal/category"
	"github.com/quartzcompany/worktops-backend/internal/config"
	"github.com/quartzcompany/worktops-backend/internal/consent"
	"github.com/quartzcompany/worktops-backend/internal/contact"
	"github.com/quartzcompany/worktops-backend/internal/content"
	"github.com/quartzcompany/worktops-backend/internal/logger"
	"github.com/quartzcompany/worktops-backend/internal/middleware"
	"github.com/quartzcompany/worktops-backend/internal/newsletter"
	"github.com/quartzcompany/worktops-backend/internal/product"
	"github.com/quartzcompany/worktops-backend/internal/promo"
	"github.com/quartzcompany/worktops-backend/internal/quote"
	"github.com/quartzcompany/worktops-backend/internal/showroom"
	"github.com/quartzcompany/worktops-backend/internal/submission"
	"github.com/quartzcompany/worktops-backend/internal/web"
)

type uploadStore interface {
	attachment.Store
	attachment.Linker
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		IsDevelopment: cfg.IsDevelopment(),
		Encoding:      cfg.LogEncoding,
		Level:         cfg.LogLevel,
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db = mustOpenDB(cfg.DatabaseURL, log)
		defer db.Close()
	}

	productService, categoryService, promoService := buildCatalogue(db, log)

	store, closeStore := buildSubmissionStore(ctx, cfg, db, log)
	defer closeStore()

	var notifier submission.Notifier
	if cfg.SendGridAPIKey != "" {
		notifier = submission.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.NotifyFromEmail, cfg.NotifyToEmail)
	} else {
		log.Info("SENDGRID_API_KEY not set; submissions are stored without email notification")
	}
	recorder := submission.NewRecorder(store, notifier, log)
	spam := submission.NewSpamCounter(log)

	uploads := buildUploads(ctx, cfg, log)

	drafts := quote.NewStore(cfg.DraftTTL)
	go drafts.Run(ctx, time.Minute, func(removed int) {
		log.Debug("expired quote drafts removed", zap.Int("count", removed))
	})

	library, err := content.Load()
	if err != nil {
		log.Fatal("load content", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:   "worktops-backend",
		BodyLimit: int(attachment.MaxFileSize) + 1<<20,
	})
	app.Use(middleware.RequestLogger(log))
	// inside the logger so a recovered panic is logged as a 500
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsDevelopment()}))
	setupCORS(app, cfg.AllowedOrigins())
	app.Use(rateLimiter(ctx, cfg, log))

	if cfg.S3Bucket == "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	// Public routes
	productHandler := product.NewHandler(productService, log)
	productHandler.AllowReset = cfg.AllowResetProducts
	productHandler.RegisterPublicRoutes(app)
	category.NewHandler(categoryService).RegisterPublicRoutes(app)
	promo.NewHandler(promoService).RegisterPublicRoutes(app)
	catalogue.NewHandler(productService, promoService, categoryService).RegisterPublicRoutes(app)

	quoteService := quote.NewService(drafts, productService, quote.SinkSubmitter{Sink: recorder}, uploads, spam, log)
	quote.NewHandler(quoteService).RegisterPublicRoutes(app)
	contact.NewHandler(contact.NewService(recorder, spam, log)).RegisterPublicRoutes(app)
	newsletter.NewHandler(newsletter.NewService(recorder, spam, log)).RegisterPublicRoutes(app)
	careers.NewHandler(careers.NewService(recorder, uploads, spam, log)).RegisterPublicRoutes(app)
	showroom.NewHandler(showroom.NewService(recorder, spam, log)).RegisterPublicRoutes(app)
	consent.NewHandler(!cfg.IsDevelopment()).RegisterPublicRoutes(app)
	content.NewHandler(library, productService).RegisterPublicRoutes(app)

	adminHandler := admin.NewHandler(admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret), log)
	adminHandler.RegisterPublicRoutes(app)

	// JWT Middleware
	app.Use(admin.Protect(signingSecret(cfg.JWTSecret, log)))

	// Protected routes
	adminHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	submission.NewHandler(recorder, spam).RegisterProtectedRoutes(app)
	attachment.NewHandler(uploads, log).RegisterProtectedRoutes(app)

	// Storefront shell goes last so API routes win.
	web.NewHandler(cfg.SPADir, log).RegisterPublicRoutes(app)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.AppEnv))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("listen", zap.Error(err))
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(url string, log *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		log.Fatal("ping database", zap.Error(err))
	}
	return db
}

// buildCatalogue uses Postgres when a database is configured, seeding empty
// tables from the bundled data, and in-memory repositories otherwise.
func buildCatalogue(db *sql.DB, log *zap.Logger) (*product.Service, *category.Service, *promo.Service) {
	if db == nil {
		log.Info("DATABASE_URL not set; serving the bundled catalogue from memory")
		return product.NewService(product.NewInMemoryRepository(product.Seed())),
			category.NewService(category.NewInMemoryRepository(category.Defaults())),
			promo.NewService(promo.NewInMemoryRepository(promo.Defaults()))
	}

	for name, migrate := range map[string]func(*sql.DB) error{
		"product":  product.Migrate,
		"category": category.Migrate,
		"promo":    promo.Migrate,
	} {
		if err := migrate(db); err != nil {
			log.Fatal("migrate", zap.String("table", name), zap.Error(err))
		}
	}

	products := product.NewService(product.NewPostgresRepository(db))
	if len(products.List()) == 0 {
		if err := products.ResetProducts(product.Seed()); err != nil {
			log.Fatal("seed products", zap.Error(err))
		}
		log.Info("seeded product catalogue")
	}

	categoryRepo := category.NewPostgresRepository(db)
	if items, err := categoryRepo.List(); err == nil && len(items) == 0 {
		if err := categoryRepo.Seed(category.Defaults()); err != nil {
			log.Fatal("seed categories", zap.Error(err))
		}
	}

	promoRepo := promo.NewPostgresRepository(db)
	if items, err := promoRepo.List(); err == nil && len(items) == 0 {
		if err := promoRepo.Seed(promo.Defaults()); err != nil {
			log.Fatal("seed promo tiles", zap.Error(err))
		}
	}

	return products, category.NewService(categoryRepo), promo.NewService(promoRepo)
}

func buildSubmissionStore(ctx context.Context, cfg config.Config, db *sql.DB, log *zap.Logger) (submission.Store, func()) {
	switch cfg.SubmissionStore {
	case "postgres":
		if db == nil {
			log.Fatal("SUBMISSION_STORE=postgres requires DATABASE_URL")
		}
		store := submission.NewPostgresStore(sqlx.NewDb(db, "pgx"))
		if err := store.Migrate(ctx); err != nil {
			log.Fatal("migrate submissions", zap.Error(err))
		}
		return store, func() {}
	case "mongo":
		client, err := submission.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal("connect mongodb", zap.Error(err))
		}
		return submission.NewMongoStore(client, cfg.MongoDB), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
	default:
		return submission.NewMemoryStore(), func() {}
	}
}

func buildUploads(ctx context.Context, cfg config.Config, log *zap.Logger) uploadStore {
	if cfg.S3Bucket == "" {
		return attachment.NewDiskStore(cfg.UploadDir)
	}
	store, err := attachment.NewS3Store(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatal("configure s3 uploads", zap.Error(err))
	}
	return store
}

// rateLimiter throttles form submissions, shared across instances when
// Redis is configured.
func rateLimiter(ctx context.Context, cfg config.Config, log *zap.Logger) fiber.Handler {
	if cfg.RedisURL != "" {
		client, err := middleware.ConnectRedis(ctx, cfg.RedisURL)
		if err == nil {
			return middleware.RedisRateLimit(client, cfg.RateLimitMax, cfg.RateLimitWindow, log)
		}
		log.Warn("redis unavailable; using in-process rate limit", zap.Error(err))
	}
	return middleware.LocalRateLimit(cfg.RateLimitMax, cfg.RateLimitWindow)
}

// signingSecret falls back to a random per-process key so protected routes
// stay closed when JWT_SECRET is unset.
func signingSecret(secret string, log *zap.Logger) string {
	if secret != "" {
		return secret
	}
	log.Warn("JWT_SECRET not set; admin routes are unreachable")
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("generate signing key", zap.Error(err))
	}
	return hex.EncodeToString(b)
}
