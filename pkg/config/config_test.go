package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen addr = %q, expected :8080", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("database url = %q, expected empty", cfg.DatabaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("listen_addr: \":9000\"\ndatabase_url: \"postgres://localhost/bhss\"\nmax_upload_bytes: 1048576\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("listen addr = %q, expected :9000", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "postgres://localhost/bhss" {
		t.Errorf("database url = %q", cfg.DatabaseURL)
	}
	if cfg.MaxUploadBytes != 1<<20 {
		t.Errorf("max upload = %d, expected %d", cfg.MaxUploadBytes, 1<<20)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":7000" {
		t.Errorf("listen addr = %q, expected :7000 from PORT", cfg.ListenAddr)
	}

	t.Setenv("BHSS_LISTEN_ADDR", "127.0.0.1:7100")
	t.Setenv("DATABASE_URL", "postgres://db/bhss")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:7100" {
		t.Errorf("listen addr = %q, expected BHSS_LISTEN_ADDR to win", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "postgres://db/bhss" {
		t.Errorf("database url = %q", cfg.DatabaseURL)
	}
}
