// Package config loads the service configuration from an optional YAML
// file, an optional .env file, and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the bhssdist serve configuration.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`
	// DatabaseURL is the Postgres connection string. Empty selects the
	// in-memory store.
	DatabaseURL string `yaml:"database_url"`
	// MaxUploadBytes caps workbook uploads. 0 selects the default.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{ListenAddr: ":8080"}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then a .env file when present, then
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Load .env if present, without failing when missing.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BHSS_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	} else if port := os.Getenv("PORT"); port != "" {
		c.ListenAddr = ":" + port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
}
