package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASIS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	// An explicitly named but missing file is an error.
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	t.Setenv("ASIS_CONFIG", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LatQuestionKey != "lat_1_Presione_actualiza" {
		t.Errorf("unexpected default lat key %q", cfg.LatQuestionKey)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "port: \"9000\"\nimport_rate_per_minute: 2\ncors_origins:\n  - https://asis.example.org\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASIS_CONFIG", path)
	t.Setenv("PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("env PORT should win over file, got %q", cfg.Port)
	}
	if cfg.ImportRatePerMinute != 2 {
		t.Errorf("expected rate 2 from file, got %d", cfg.ImportRatePerMinute)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://asis.example.org" {
		t.Errorf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestEnvOriginList(t *testing.T) {
	t.Setenv("ASIS_CONFIG", "")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("origins not trimmed: %v", cfg.CORSOrigins)
	}
}
