package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.RateLimitMax != 10 {
		t.Fatalf("expected default rate limit 10, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Fatalf("expected 1m window, got %v", cfg.RateLimitWindow)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RATE_LIMIT_MAX", "3")
	t.Setenv("ALLOW_RESET_PRODUCTS", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	cfg := Load()
	if cfg.Addr != ":9090" || cfg.RateLimitMax != 3 || !cfg.AllowResetProducts {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if got := cfg.AllowedOrigins(); got != "https://a.example,https://b.example" {
		t.Fatalf("unexpected origins %q", got)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	if got := Load().RateLimitMax; got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}
}
