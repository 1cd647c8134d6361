package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/middleware"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/uploads"
)

// Routes builds the full HTTP surface. Demo tenant routes register last so
// reserved application routes always shadow a slug of the same name.
func (h *Handler) Routes(staticDir, uploadDir string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Handle(uploads.URLPrefix+"/*", http.StripPrefix(uploads.URLPrefix+"/", http.FileServer(http.Dir(uploadDir))))

	// Public API
	r.Post("/api/auth/login", h.Login)
	r.Get("/api/settings", h.GetSettings)
	r.Post("/api/contact", h.CreateContact)
	r.Get("/api/demo/{slug}", h.PublicDemo)

	// Admin API
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.Sessions))
		r.Post("/api/auth/logout", h.Logout)
		r.Put("/api/settings", h.UpdateSettings)
		r.Post("/api/upload/logo", h.UploadLogo)
		r.Get("/api/contact", h.ListContact)
		r.Get("/api/demos", h.ListDemos)
		r.Get("/api/demos/{id}", h.GetDemo)
		r.Post("/api/demos", h.CreateDemo)
		r.Put("/api/demos/{id}", h.UpdateDemo)
		r.Delete("/api/demos/{id}", h.DeleteDemo)
	})

	// Pages
	r.Get("/", h.Home)
	r.Get("/login", h.LoginPage)
	r.Post("/contact", h.SubmitContact)
	r.Get("/quote/start", h.QuoteStart)
	r.Post("/quote/step", h.QuoteStep)
	r.Get("/diensten/{id}", h.ServiceDetailPage)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePage(h.Sessions))
		r.Get("/dashboard", h.DashboardPage)
		r.Get("/dashboard/demos", h.DemoManagementPage)
		r.Get("/dashboard/demos/new", h.DemoFormPage)
		r.Get("/dashboard/demos/{id}/edit", h.DemoFormPage)
	})

	// Demo tenants
	r.Get("/{slug}", h.DemoViewer)
	r.Get("/{slug}/diensten/{id}", h.DemoViewer)
	r.NotFound(h.NotFoundPage)

	return r
}
