package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Name != "expense-tracker" {
		t.Fatalf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %q", cfg.App.Addr())
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Fatalf("unexpected request timeout %v", cfg.App.RequestTimeout())
	}
	if cfg.Auth.TokenTTL() != 168*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.Auth.TokenTTL())
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected bcrypt cost %d", cfg.Auth.BcryptCost)
	}
	if !cfg.Postgres.RunMigrations {
		t.Fatal("migrations should default to enabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("AUTH_JWT_SECRET", "override")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if cfg.Auth.TokenTTL() != 24*time.Hour {
		t.Fatalf("unexpected token ttl %v", cfg.Auth.TokenTTL())
	}
	if cfg.Auth.JWTSecret != "override" {
		t.Fatalf("unexpected secret %q", cfg.Auth.JWTSecret)
	}
	if cfg.Postgres.RunMigrations {
		t.Fatal("expected migrations disabled")
	}
	if cfg.Logger.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Logger.Level)
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}

func TestTokenTTLFallback(t *testing.T) {
	if (AuthConfig{}).TokenTTL() != 168*time.Hour {
		t.Fatal("zero ttl must fall back to 7 days")
	}
}
