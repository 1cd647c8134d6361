package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/middleware"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/quote"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/services"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/tenant"
)

// pageData feeds every server-rendered template. The fixed section sequence
// (header, hero, services, USPs, reviews, FAQ, CTA, map, footer) reads only
// from Settings, so the same templates serve the default site and any demo.
type pageData struct {
	Settings    models.EffectiveSettings
	Theme       string
	Services    []services.Service
	Service     *services.Service
	LoggedIn    bool
	Demos       []models.Demo
	Submissions []models.ContactSubmission
	Demo        *models.Demo
	Wizard      *quote.Wizard
}

func (h *Handler) render(w http.ResponseWriter, name string, data pageData) {
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error().Err(err).Str("template", name).Msg("render")
	}
}

// renderSite resolves the request path to a tenant context, activates it,
// and renders the site page for it. The theme is part of activation: a demo
// page cannot render without its own derived color.
func (h *Handler) renderSite(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Resolver.Activate(r.Context(), tenant.Resolve(r.URL.Path))
	if err != nil {
		h.Log.Error().Err(err).Msg("activate tenant context")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Settings: rc.Settings,
		Theme:    rc.Theme.CSSValue(),
		Services: services.All(),
		LoggedIn: middleware.Authenticated(h.Sessions, r),
	}

	if rc.Kind == tenant.KindNotFound {
		w.WriteHeader(http.StatusNotFound)
		h.render(w, "not_found.html", data)
		return
	}

	if rc.ServiceID != "" {
		svc, ok := services.BySlug(rc.ServiceID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			h.render(w, "not_found.html", data)
			return
		}
		data.Service = &svc
		h.render(w, "service.html", data)
		return
	}

	h.render(w, "index.html", data)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderSite(w, r)
}

func (h *Handler) DemoViewer(w http.ResponseWriter, r *http.Request) {
	h.renderSite(w, r)
}

func (h *Handler) ServiceDetailPage(w http.ResponseWriter, r *http.Request) {
	h.renderSite(w, r)
}

func (h *Handler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Resolver.Activate(r.Context(), tenant.Context{Kind: tenant.KindNotFound})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	h.render(w, "not_found.html", pageData{Settings: rc.Settings, Theme: rc.Theme.CSSValue()})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.Authenticated(h.Sessions, r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	rc, err := h.Resolver.Activate(r.Context(), tenant.Context{Kind: tenant.KindDefault})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "login.html", pageData{Settings: rc.Settings, Theme: rc.Theme.CSSValue()})
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Resolver.Activate(r.Context(), tenant.Context{Kind: tenant.KindDefault})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	submissions, err := h.Store.ListContactSubmissions(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list contact submissions")
	}

	h.render(w, "dashboard.html", pageData{
		Settings:    rc.Settings,
		Theme:       rc.Theme.CSSValue(),
		LoggedIn:    true,
		Submissions: submissions,
	})
}

func (h *Handler) DemoManagementPage(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Resolver.Activate(r.Context(), tenant.Context{Kind: tenant.KindDefault})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	demos, err := h.Store.ListDemos(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list demos")
	}

	h.render(w, "demos.html", pageData{
		Settings: rc.Settings,
		Theme:    rc.Theme.CSSValue(),
		LoggedIn: true,
		Demos:    demos,
	})
}

func (h *Handler) DemoFormPage(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Resolver.Activate(r.Context(), tenant.Context{Kind: tenant.KindDefault})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := pageData{Settings: rc.Settings, Theme: rc.Theme.CSSValue(), LoggedIn: true}

	if id := chi.URLParam(r, "id"); id != "" {
		demo, err := h.Store.GetDemoByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			h.render(w, "not_found.html", data)
			return
		}
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		data.Demo = demo
	}

	h.render(w, "demo_form.html", data)
}

// htmxError writes an inline error into the #error element, the way the
// dashboard and quote forms surface failures without a page reload.
func htmxError(w http.ResponseWriter, msg string) {
	w.Header().Set("HX-Retarget", "#error")
	w.Header().Set("HX-Reswap", "innerHTML")
	fmt.Fprintf(w, `<div class="form-error">%s</div>`, msg)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// SubmitContact handles the single-step hero lead form.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	in := models.ContactSubmissionInput{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		ServiceType: optional(r.FormValue("serviceType")),
		Message:     optional(r.FormValue("message")),
	}
	if verr := in.Validate(); verr != nil {
		htmxError(w, "Vul naam, e-mail en telefoonnummer in")
		return
	}

	if _, err := h.Store.CreateContactSubmission(r.Context(), in); err != nil {
		h.Log.Error().Err(err).Msg("create contact submission")
		htmxError(w, "Er is iets misgegaan. Probeer het later opnieuw.")
		return
	}

	fmt.Fprint(w, `<div class="form-success">Bedankt! We nemen binnen 24 uur contact met u op.</div>`)
}

// wizardFromForm rebuilds the quote wizard from the posted step and fields.
// The step is clamped so a tampered value cannot skip the gating.
func wizardFromForm(r *http.Request) *quote.Wizard {
	step, _ := strconv.Atoi(r.FormValue("step"))
	if step < quote.StepService || step > quote.StepDetails {
		step = quote.StepService
	}
	wiz := &quote.Wizard{
		Step: step,
		Form: quote.Form{
			ServiceType:    r.FormValue("serviceType"),
			Name:           r.FormValue("name"),
			Email:          r.FormValue("email"),
			Phone:          r.FormValue("phone"),
			ProjectDetails: r.FormValue("projectDetails"),
		},
	}
	// Re-walk the gates from step 1: every step below the claimed one must
	// still pass.
	claimed := wiz.Step
	wiz.Step = quote.StepService
	for wiz.Step < claimed {
		if !wiz.Next() {
			break
		}
	}
	return wiz
}

// QuoteStart opens the quote sidebar at a blank first step.
func (h *Handler) QuoteStart(w http.ResponseWriter, r *http.Request) {
	h.render(w, "quote_step.html", pageData{Wizard: quote.New(), Services: services.All()})
}

// QuoteStep drives the three-step quote wizard sidebar. Each post carries
// the accumulated fields plus an action (next, prev, submit); the response
// is the partial for the step the wizard lands on.
func (h *Handler) QuoteStep(w http.ResponseWriter, r *http.Request) {
	wiz := wizardFromForm(r)

	switch r.FormValue("action") {
	case "prev":
		wiz.Prev()
	case "next":
		if !wiz.Next() {
			htmxError(w, stepRequirement(wiz.Step))
			return
		}
	case "submit":
		if !wiz.CanSubmit() {
			htmxError(w, stepRequirement(wiz.Step))
			return
		}
		in := models.ContactSubmissionInput{
			Name:           wiz.Form.Name,
			Email:          wiz.Form.Email,
			Phone:          wiz.Form.Phone,
			ServiceType:    optional(wiz.Form.ServiceType),
			ProjectDetails: optional(wiz.Form.ProjectDetails),
		}
		if _, err := h.Store.CreateContactSubmission(r.Context(), in); err != nil {
			h.Log.Error().Err(err).Msg("create quote submission")
			htmxError(w, "Er is iets misgegaan. Probeer het later opnieuw.")
			return
		}
		wiz.Reset()
		fmt.Fprint(w, `<div class="form-success">Offerte aanvraag verzonden! We nemen binnen 24 uur contact met u op.</div>`)
		return
	}

	h.render(w, "quote_step.html", pageData{Wizard: wiz, Services: services.All()})
}

func stepRequirement(step int) string {
	switch step {
	case quote.StepService:
		return "Kies eerst een type dienst"
	case quote.StepContact:
		return "Vul naam, e-mail en telefoonnummer in"
	}
	return "Vul alle verplichte velden in"
}
