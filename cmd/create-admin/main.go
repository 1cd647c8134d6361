package main

import (
	"context"
	"fmt"
	"log"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/auth"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/config"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
)

// create-admin (re)writes the dashboard credential in the configured
// Postgres store, hashing the password before it is stored.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; the in-memory store seeds its own admin")
	}

	ctx := context.Background()
	db, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := auth.ValidatePassword(cfg.AdminPassword); err != nil {
		log.Fatalf("Refusing to store password: %v", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin, err := db.UpsertAdmin(ctx, cfg.AdminEmail, hash)
	if err != nil {
		log.Fatalf("Failed to store admin: %v", err)
	}

	fmt.Printf("Admin credential stored for %s (id %s)\n", admin.Email, admin.ID)
}
