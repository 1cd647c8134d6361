package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/auth"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/middleware"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/tenant"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/uploads"
)

type Handler struct {
	Store     store.Store
	Sessions  *sessions.CookieStore
	Logos     *uploads.Saver
	Templates *template.Template
	Resolver  *tenant.Resolver
	Log       zerolog.Logger
}

func New(st store.Store, sess *sessions.CookieStore, logos *uploads.Saver, tmpl *template.Template, log zerolog.Logger) *Handler {
	return &Handler{
		Store:     st,
		Sessions:  sess,
		Logos:     logos,
		Templates: tmpl,
		Resolver:  tenant.NewResolver(st),
		Log:       log,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// respondStoreError translates an unexpected store failure into a generic
// 500, keeping the detail server-side.
func (h *Handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	h.Log.Error().Err(err).Str("op", op).Msg("store error")
	h.respondMessage(w, http.StatusInternalServerError, "Internal server error")
}

// Login compares the submitted credentials against the stored admin user.
// The failure message never reveals whether the email exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}

	admin, err := h.Store.GetAdminByEmail(r.Context(), creds.Email)
	if errors.Is(err, store.ErrNotFound) {
		h.respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.respondStoreError(w, "login", err)
		return
	}
	if auth.CheckPassword(creds.Password, admin.PasswordHash) != nil {
		h.respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, _ := h.Sessions.Get(r, middleware.SessionName)
	session.Values["user_id"] = admin.ID
	if err := session.Save(r, w); err != nil {
		h.Log.Error().Err(err).Msg("save session")
		h.respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Sessions.Get(r, middleware.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.respondMessage(w, http.StatusInternalServerError, "Failed to logout")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSiteSettings(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		h.respondMessage(w, http.StatusNotFound, "Settings not found")
		return
	}
	if err != nil {
		h.respondStoreError(w, "get settings", err)
		return
	}
	h.respondJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in models.SiteSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}

	settings, err := h.Store.UpdateSiteSettings(r.Context(), in)
	if err != nil {
		h.respondStoreError(w, "update settings", err)
		return
	}
	h.respondJSON(w, http.StatusOK, settings)
}

func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploads.MaxFileSize + 1<<20); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	_, fileHeader, err := r.FormFile("logo")
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	logoURL, err := h.Logos.SaveLogo(fileHeader)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"logoUrl": logoURL})
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in models.ContactSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if verr := in.Validate(); verr != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid data",
			"fields":  verr.Fields,
		})
		return
	}

	sub, err := h.Store.CreateContactSubmission(r.Context(), in)
	if err != nil {
		h.respondStoreError(w, "create contact submission", err)
		return
	}
	h.respondJSON(w, http.StatusOK, sub)
}

func (h *Handler) ListContact(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Store.ListContactSubmissions(r.Context())
	if err != nil {
		h.respondStoreError(w, "list contact submissions", err)
		return
	}
	if subs == nil {
		subs = []models.ContactSubmission{}
	}
	h.respondJSON(w, http.StatusOK, subs)
}

func (h *Handler) ListDemos(w http.ResponseWriter, r *http.Request) {
	demos, err := h.Store.ListDemos(r.Context())
	if err != nil {
		h.respondStoreError(w, "list demos", err)
		return
	}
	if demos == nil {
		demos = []models.Demo{}
	}
	h.respondJSON(w, http.StatusOK, demos)
}

func (h *Handler) GetDemo(w http.ResponseWriter, r *http.Request) {
	demo, err := h.Store.GetDemoByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		h.respondMessage(w, http.StatusNotFound, "Demo not found")
		return
	}
	if err != nil {
		h.respondStoreError(w, "get demo", err)
		return
	}
	h.respondJSON(w, http.StatusOK, demo)
}

func (h *Handler) CreateDemo(w http.ResponseWriter, r *http.Request) {
	var in models.DemoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if verr := in.Validate(true); verr != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid data",
			"fields":  verr.Fields,
		})
		return
	}
	if tenant.Reserved(in.Slug) {
		h.respondMessage(w, http.StatusBadRequest, "This slug is reserved")
		return
	}

	demo, err := h.Store.CreateDemo(r.Context(), in)
	if errors.Is(err, store.ErrConflict) {
		h.respondMessage(w, http.StatusBadRequest, "A demo with this slug already exists")
		return
	}
	if err != nil {
		h.respondStoreError(w, "create demo", err)
		return
	}
	h.respondJSON(w, http.StatusOK, demo)
}

func (h *Handler) UpdateDemo(w http.ResponseWriter, r *http.Request) {
	var in models.DemoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Invalid data")
		return
	}
	if verr := in.Validate(false); verr != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid data",
			"fields":  verr.Fields,
		})
		return
	}

	demo, err := h.Store.UpdateDemo(r.Context(), chi.URLParam(r, "id"), in)
	if errors.Is(err, store.ErrNotFound) {
		h.respondMessage(w, http.StatusNotFound, "Demo not found")
		return
	}
	if errors.Is(err, store.ErrConflict) {
		h.respondMessage(w, http.StatusBadRequest, "A demo with this slug already exists")
		return
	}
	if err != nil {
		h.respondStoreError(w, "update demo", err)
		return
	}
	h.respondJSON(w, http.StatusOK, demo)
}

func (h *Handler) DeleteDemo(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Store.DeleteDemo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, "delete demo", err)
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "Demo not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PublicDemo serves a demo's settings to the public viewer, no session
// required.
func (h *Handler) PublicDemo(w http.ResponseWriter, r *http.Request) {
	demo, err := h.Store.GetDemoBySlug(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, store.ErrNotFound) {
		h.respondMessage(w, http.StatusNotFound, "Demo not found")
		return
	}
	if err != nil {
		h.respondStoreError(w, "get demo by slug", err)
		return
	}
	h.respondJSON(w, http.StatusOK, demo)
}
