package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	AppEnv   string
	Addr     string
	SPADir   string
	LogLevel string
	// LogEncoding is "console" or "json".
	LogEncoding string

	DatabaseURL     string
	SubmissionStore string
	MongoURI        string
	MongoDB         string

	RedisURL        string
	RateLimitMax    int
	RateLimitWindow time.Duration

	UploadDir string
	S3Bucket  string
	AWSRegion string

	SendGridAPIKey  string
	NotifyFromEmail string
	NotifyToEmail   string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	AllowResetProducts bool
	DraftTTL           time.Duration
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Addr:        getEnv("HTTP_ADDR", ":8080"),
		SPADir:      getEnv("SPA_DIR", "./dist"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),

		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SubmissionStore: getEnv("SUBMISSION_STORE", "memory"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "worktops"),

		RedisURL:        os.Getenv("REDIS_URL"),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 10),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		S3Bucket:  os.Getenv("S3_BUCKET"),
		AWSRegion: getEnv("AWS_REGION", "eu-west-2"),

		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		NotifyFromEmail: getEnv("NOTIFY_FROM_EMAIL", "no-reply@thequartzcompany.co.uk"),
		NotifyToEmail:   getEnv("NOTIFY_TO_EMAIL", "sales@thequartzcompany.co.uk"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		AllowResetProducts: getEnvBool("ALLOW_RESET_PRODUCTS", false),
		DraftTTL:           time.Duration(getEnvInt("QUOTE_DRAFT_TTL_MINUTES", 120)) * time.Minute,
	}
}

// IsDevelopment reports whether the app runs with development defaults.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

// AllowedOrigins is the CORS origin list.
func (c Config) AllowedOrigins() string {
	return strings.Join(getEnvSlice("CORS_ORIGINS", []string{"*"}), ",")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}
