package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/auth"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/config"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/handlers"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/uploads"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	st, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}
	defer cleanup()

	if err := seed(ctx, st, cfg); err != nil {
		log.Fatal().Err(err).Msg("seed store")
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"sub": func(a, b int) int { return a - b },
	}).ParseGlob("templates/*.html"))

	h := handlers.New(st, sessionStore, uploads.NewSaver(cfg.UploadDir), tmpl, log)
	r := h.Routes("static", cfg.UploadDir)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func newStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemory(), func() {}, nil
	}
	pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return pg, pg.Close, nil
}

// seed makes sure a fresh store has an admin credential and the default site
// settings, so the site renders and the dashboard is reachable on first boot.
func seed(ctx context.Context, st store.Store, cfg config.Config) error {
	if _, err := st.GetAdminByEmail(ctx, cfg.AdminEmail); errors.Is(err, store.ErrNotFound) {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return err
		}
		if _, err := st.UpsertAdmin(ctx, cfg.AdminEmail, hash); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := st.GetSiteSettings(ctx); errors.Is(err, store.ErrNotFound) {
		if _, err := st.UpdateSiteSettings(ctx, models.SiteSettingsInput{}); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return nil
}
