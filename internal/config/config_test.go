package config_test

import (
	"testing"

	"github.com/gracemobile/backend/internal/config"
)

func TestLoadDefaultAddr(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":4000" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr)
	}
}

func TestLoadAddrVariants(t *testing.T) {
	cases := map[string]string{
		"8080":           ":8080",
		":9090":          ":9090",
		"127.0.0.1:9090": "127.0.0.1:9090",
	}

	for value, want := range cases {
		t.Setenv("PORT", value)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load(%q) err: %v", value, err)
		}
		if cfg.Server.Addr != want {
			t.Fatalf("PORT=%q: got %s want %s", value, cfg.Server.Addr, want)
		}
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "80 80")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for malformed PORT")
	}
}

func TestDatabaseToggle(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Database.Enabled() {
		t.Fatal("database must be disabled without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/grace")
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.Database.Enabled() {
		t.Fatal("database must be enabled with DATABASE_URL")
	}
}

func TestCORSOriginsOverride(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[1] != "https://staging.example.com" {
		t.Fatalf("origins not trimmed: %v", cfg.CORS.AllowedOrigins)
	}
}
