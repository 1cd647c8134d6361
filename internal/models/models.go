package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Documented field defaults. An omitted field in an update payload falls back
// to these, never to the previous stored value (replace, not merge).
const (
	DefaultBusinessName   = "BEDRIJFSNAAM"
	DefaultLogoText       = "BEDRIJFSNAAM"
	DefaultPhoneNumber    = "+31 6 12345678"
	DefaultEmail          = "info@dakdekker.nl"
	DefaultWhatsappNumber = "31612345678"
	DefaultAddress        = "Amsterdam, Nederland"
	DefaultPrimaryColor   = "#0ea5e9"
)

// SiteSettings is the singleton branding/contact record for the default site.
type SiteSettings struct {
	ID                  string    `json:"id"`
	BusinessName        string    `json:"businessName"`
	LogoText            string    `json:"logoText"`
	LogoURL             *string   `json:"logoUrl"`
	PhoneNumber         string    `json:"phoneNumber"`
	Email               string    `json:"email"`
	WhatsappNumber      string    `json:"whatsappNumber"`
	Address             string    `json:"address"`
	GoogleMapsReviewURL *string   `json:"googleMapsReviewUrl"`
	PrimaryColor        string    `json:"primaryColor"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Demo is a named tenant record: a structural superset of SiteSettings keyed
// by a unique, URL-safe slug. The slug is immutable after creation.
type Demo struct {
	ID                  string    `json:"id"`
	Slug                string    `json:"slug"`
	BusinessName        string    `json:"businessName"`
	LogoText            string    `json:"logoText"`
	LogoURL             *string   `json:"logoUrl"`
	PhoneNumber         string    `json:"phoneNumber"`
	Email               string    `json:"email"`
	WhatsappNumber      string    `json:"whatsappNumber"`
	Address             string    `json:"address"`
	GoogleMapsReviewURL *string   `json:"googleMapsReviewUrl"`
	PrimaryColor        string    `json:"primaryColor"`
	HeroImage           *string   `json:"heroImage"`
	Service1Image       *string   `json:"service1Image"`
	Service2Image       *string   `json:"service2Image"`
	Service3Image       *string   `json:"service3Image"`
	Service4Image       *string   `json:"service4Image"`
	Service5Image       *string   `json:"service5Image"`
	Service6Image       *string   `json:"service6Image"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ServiceImage returns the uploaded image for the 1-based service position,
// or nil when none is set.
func (d *Demo) ServiceImage(n int) *string {
	switch n {
	case 1:
		return d.Service1Image
	case 2:
		return d.Service2Image
	case 3:
		return d.Service3Image
	case 4:
		return d.Service4Image
	case 5:
		return d.Service5Image
	case 6:
		return d.Service6Image
	}
	return nil
}

// ContactSubmission is an immutable lead-inquiry record.
type ContactSubmission struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ServiceType    *string   `json:"serviceType"`
	Message        *string   `json:"message"`
	ProjectDetails *string   `json:"projectDetails"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AdminUser is the dashboard credential record. PasswordHash holds a bcrypt
// hash, never the cleartext password.
type AdminUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// SiteSettingsInput is the update payload for the settings singleton. Nil
// fields take their documented default.
type SiteSettingsInput struct {
	BusinessName        *string `json:"businessName"`
	LogoText            *string `json:"logoText"`
	LogoURL             *string `json:"logoUrl"`
	PhoneNumber         *string `json:"phoneNumber"`
	Email               *string `json:"email"`
	WhatsappNumber      *string `json:"whatsappNumber"`
	Address             *string `json:"address"`
	GoogleMapsReviewURL *string `json:"googleMapsReviewUrl"`
	PrimaryColor        *string `json:"primaryColor"`
}

// DemoInput is the create/update payload for a demo. On update the slug is
// ignored; the stored slug is kept.
type DemoInput struct {
	Slug                string  `json:"slug"`
	BusinessName        *string `json:"businessName"`
	LogoText            *string `json:"logoText"`
	LogoURL             *string `json:"logoUrl"`
	PhoneNumber         *string `json:"phoneNumber"`
	Email               *string `json:"email"`
	WhatsappNumber      *string `json:"whatsappNumber"`
	Address             *string `json:"address"`
	GoogleMapsReviewURL *string `json:"googleMapsReviewUrl"`
	PrimaryColor        *string `json:"primaryColor"`
	HeroImage           *string `json:"heroImage"`
	Service1Image       *string `json:"service1Image"`
	Service2Image       *string `json:"service2Image"`
	Service3Image       *string `json:"service3Image"`
	Service4Image       *string `json:"service4Image"`
	Service5Image       *string `json:"service5Image"`
	Service6Image       *string `json:"service6Image"`
}

// ContactSubmissionInput is the lead payload accepted from the public forms.
type ContactSubmissionInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ServiceType    *string `json:"serviceType"`
	Message        *string `json:"message"`
	ProjectDetails *string `json:"projectDetails"`
}

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a usable URL path segment for a demo.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validate checks the required fields of a contact submission.
func (in *ContactSubmissionInput) Validate() *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks a demo payload. The slug is only required (and only
// checked) on create; updates keep the stored slug.
func (in *DemoInput) Validate(create bool) *ValidationError {
	fields := map[string]string{}
	if create {
		if in.Slug == "" {
			fields["slug"] = "slug is required"
		} else if !ValidSlug(in.Slug) {
			fields["slug"] = "slug must contain only lowercase letters, digits and hyphens"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Or returns the pointed-to value, or def when p is nil.
func Or(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
