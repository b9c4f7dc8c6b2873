package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	DatabaseURL    string
	APIKey         string
	DefaultLocale  string
	MigrationsPath string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("API_KEY"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration and fills in
// local defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("config: API_KEY is required and cannot be empty")
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = ":8080"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "id"
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/absensi?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
