package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ML_CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("default port wrong: %q", cfg.HTTP.Port)
	}
	if cfg.Postgres.Host != "localhost" || cfg.Postgres.Port != "5432" {
		t.Fatalf("default postgres wrong: %+v", cfg.Postgres)
	}
	if cfg.Redis.Channel != "orchestration" {
		t.Fatalf("default redis channel wrong: %q", cfg.Redis.Channel)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := []byte(`
env: production
http:
  port: "9090"
postgres:
  host: db.internal
  name: marketlens_prod
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ML_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" {
		t.Fatalf("env not read from file: %q", cfg.Env)
	}
	if cfg.HTTP.Port != "9090" {
		t.Fatalf("port not read from file: %q", cfg.HTTP.Port)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Name != "marketlens_prod" {
		t.Fatalf("postgres not read from file: %+v", cfg.Postgres)
	}
	// untouched fields keep their defaults
	if cfg.Postgres.Port != "5432" {
		t.Fatalf("default postgres port lost: %q", cfg.Postgres.Port)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ML_CONFIG_PATH", path)
	t.Setenv("PORT", "7070")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != "7070" {
		t.Fatalf("env should win over file, got %q", cfg.HTTP.Port)
	}
	if len(cfg.HTTP.AllowedOrigins) != 2 || cfg.HTTP.AllowedOrigins[1] != "https://admin.example.com" {
		t.Fatalf("allowed origins not parsed: %+v", cfg.HTTP.AllowedOrigins)
	}
	if !cfg.Otel.Enabled {
		t.Fatalf("otel enabled override lost")
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "localhost", Port: "5432", User: "postgres", Password: "pw", Name: "marketlens"}
	want := "postgres://postgres:pw@localhost:5432/marketlens?sslmode=disable"
	if got := p.DSN(); got != want {
		t.Fatalf("DSN mismatch:\n got %q\nwant %q", got, want)
	}
}
