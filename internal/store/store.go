// Package store persists the site settings singleton, demo tenants, contact
// submissions and the admin credential. Implementations: an in-memory map
// store for development and tests, and a Postgres store for deployments.
package store

import (
	"context"
	"errors"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
)

var (
	// ErrNotFound signals an unknown id, slug, or an uninitialized
	// settings singleton.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a demo slug collision.
	ErrConflict = errors.New("slug already exists")
)

// Store is the persistence contract shared by all implementations. Writes
// are atomic with respect to reads on the same instance; update payloads
// replace the stored record field by field, omitted fields falling back to
// their documented defaults.
type Store interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	UpsertAdmin(ctx context.Context, email, passwordHash string) (*models.AdminUser, error)

	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, in models.SiteSettingsInput) (*models.SiteSettings, error)

	CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (*models.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)

	ListDemos(ctx context.Context) ([]models.Demo, error)
	GetDemoBySlug(ctx context.Context, slug string) (*models.Demo, error)
	GetDemoByID(ctx context.Context, id string) (*models.Demo, error)
	CreateDemo(ctx context.Context, in models.DemoInput) (*models.Demo, error)
	UpdateDemo(ctx context.Context, id string, in models.DemoInput) (*models.Demo, error)
	DeleteDemo(ctx context.Context, id string) (bool, error)
}
