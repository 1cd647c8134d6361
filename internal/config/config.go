package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from the environment.
// An empty DatabaseURL selects the in-memory store.
type Config struct {
	Addr          string `env:"ADDR" envDefault:"0.0.0.0:5000"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"development-secret-change-in-production"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"attached_assets/logos"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"info@digiten.nl"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"digiten339584!"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
