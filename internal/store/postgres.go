package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
)

// Postgres is a pgx-backed Store. Slug uniqueness is enforced by a unique
// constraint on demos.slug; the resulting SQLSTATE 23505 is the conflict
// signal, so concurrent creates of the same slug cannot race past a prior
// existence check.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to databaseURL and ensures the schema exists.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS admin_users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS site_settings (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		logo_text TEXT NOT NULL,
		logo_url TEXT,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL,
		whatsapp_number TEXT NOT NULL,
		address TEXT NOT NULL,
		google_maps_review_url TEXT,
		primary_color TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contact_submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		service_type TEXT,
		message TEXT,
		project_details TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS demos (
		id TEXT PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		business_name TEXT NOT NULL,
		logo_text TEXT NOT NULL,
		logo_url TEXT,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL,
		whatsapp_number TEXT NOT NULL,
		address TEXT NOT NULL,
		google_maps_review_url TEXT,
		primary_color TEXT NOT NULL,
		hero_image TEXT,
		service1_image TEXT,
		service2_image TEXT,
		service3_image TEXT,
		service4_image TEXT,
		service5_image TEXT,
		service6_image TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_demos_created ON demos(created_at DESC);
	`

	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (p *Postgres) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := p.pool.QueryRow(ctx,
		"SELECT id, email, password_hash FROM admin_users WHERE lower(email) = lower($1)",
		email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (p *Postgres) UpsertAdmin(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := p.pool.QueryRow(ctx,
		`INSERT INTO admin_users (id, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 RETURNING id, email, password_hash`,
		uuid.NewString(), email, passwordHash,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

const settingsColumns = `id, business_name, logo_text, logo_url, phone_number, email,
	whatsapp_number, address, google_maps_review_url, primary_color, updated_at`

func scanSettings(row pgx.Row) (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := row.Scan(&s.ID, &s.BusinessName, &s.LogoText, &s.LogoURL, &s.PhoneNumber,
		&s.Email, &s.WhatsappNumber, &s.Address, &s.GoogleMapsReviewURL,
		&s.PrimaryColor, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *Postgres) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	return scanSettings(p.pool.QueryRow(ctx,
		"SELECT "+settingsColumns+" FROM site_settings LIMIT 1"))
}

func (p *Postgres) UpdateSiteSettings(ctx context.Context, in models.SiteSettingsInput) (*models.SiteSettings, error) {
	existing, err := p.GetSiteSettings(ctx)
	id := uuid.NewString()
	switch {
	case err == nil:
		id = existing.ID
	case errors.Is(err, ErrNotFound):
		// First write creates the singleton.
	default:
		return nil, err
	}

	return scanSettings(p.pool.QueryRow(ctx,
		`INSERT INTO site_settings (id, business_name, logo_text, logo_url, phone_number,
			email, whatsapp_number, address, google_maps_review_url, primary_color, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			logo_text = EXCLUDED.logo_text,
			logo_url = EXCLUDED.logo_url,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			whatsapp_number = EXCLUDED.whatsapp_number,
			address = EXCLUDED.address,
			google_maps_review_url = EXCLUDED.google_maps_review_url,
			primary_color = EXCLUDED.primary_color,
			updated_at = CURRENT_TIMESTAMP
		 RETURNING `+settingsColumns,
		id,
		models.Or(in.BusinessName, models.DefaultBusinessName),
		models.Or(in.LogoText, models.DefaultLogoText),
		in.LogoURL,
		models.Or(in.PhoneNumber, models.DefaultPhoneNumber),
		models.Or(in.Email, models.DefaultEmail),
		models.Or(in.WhatsappNumber, models.DefaultWhatsappNumber),
		models.Or(in.Address, models.DefaultAddress),
		in.GoogleMapsReviewURL,
		models.Or(in.PrimaryColor, models.DefaultPrimaryColor)))
}

func (p *Postgres) CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	err := p.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, service_type, message, project_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, name, email, phone, service_type, message, project_details, created_at`,
		uuid.NewString(), in.Name, in.Email, in.Phone, in.ServiceType, in.Message, in.ProjectDetails,
	).Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.ServiceType, &sub.Message,
		&sub.ProjectDetails, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (p *Postgres) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, email, phone, service_type, message, project_details, created_at
		 FROM contact_submissions ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.ContactSubmission
	for rows.Next() {
		var sub models.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.ServiceType,
			&sub.Message, &sub.ProjectDetails, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

const demoColumns = `id, slug, business_name, logo_text, logo_url, phone_number, email,
	whatsapp_number, address, google_maps_review_url, primary_color, hero_image,
	service1_image, service2_image, service3_image, service4_image, service5_image,
	service6_image, created_at, updated_at`

func scanDemo(row pgx.Row) (*models.Demo, error) {
	var d models.Demo
	err := row.Scan(&d.ID, &d.Slug, &d.BusinessName, &d.LogoText, &d.LogoURL,
		&d.PhoneNumber, &d.Email, &d.WhatsappNumber, &d.Address, &d.GoogleMapsReviewURL,
		&d.PrimaryColor, &d.HeroImage, &d.Service1Image, &d.Service2Image,
		&d.Service3Image, &d.Service4Image, &d.Service5Image, &d.Service6Image,
		&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *Postgres) ListDemos(ctx context.Context) ([]models.Demo, error) {
	rows, err := p.pool.Query(ctx,
		"SELECT "+demoColumns+" FROM demos ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var demos []models.Demo
	for rows.Next() {
		d, err := scanDemo(rows)
		if err != nil {
			return nil, err
		}
		demos = append(demos, *d)
	}
	return demos, rows.Err()
}

func (p *Postgres) GetDemoBySlug(ctx context.Context, slug string) (*models.Demo, error) {
	return scanDemo(p.pool.QueryRow(ctx,
		"SELECT "+demoColumns+" FROM demos WHERE slug = $1", slug))
}

func (p *Postgres) GetDemoByID(ctx context.Context, id string) (*models.Demo, error) {
	return scanDemo(p.pool.QueryRow(ctx,
		"SELECT "+demoColumns+" FROM demos WHERE id = $1", id))
}

func (p *Postgres) CreateDemo(ctx context.Context, in models.DemoInput) (*models.Demo, error) {
	demo, err := scanDemo(p.pool.QueryRow(ctx,
		`INSERT INTO demos (id, slug, business_name, logo_text, logo_url, phone_number,
			email, whatsapp_number, address, google_maps_review_url, primary_color,
			hero_image, service1_image, service2_image, service3_image, service4_image,
			service5_image, service6_image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 RETURNING `+demoColumns,
		uuid.NewString(), in.Slug,
		models.Or(in.BusinessName, models.DefaultBusinessName),
		models.Or(in.LogoText, models.DefaultLogoText),
		in.LogoURL,
		models.Or(in.PhoneNumber, models.DefaultPhoneNumber),
		models.Or(in.Email, models.DefaultEmail),
		models.Or(in.WhatsappNumber, models.DefaultWhatsappNumber),
		models.Or(in.Address, models.DefaultAddress),
		in.GoogleMapsReviewURL,
		models.Or(in.PrimaryColor, models.DefaultPrimaryColor),
		in.HeroImage, in.Service1Image, in.Service2Image, in.Service3Image,
		in.Service4Image, in.Service5Image, in.Service6Image))
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	return demo, err
}

func (p *Postgres) UpdateDemo(ctx context.Context, id string, in models.DemoInput) (*models.Demo, error) {
	existing, err := p.GetDemoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A payload slug that belongs to another demo is rejected; the stored
	// slug itself never changes.
	if in.Slug != "" && in.Slug != existing.Slug {
		other, err := p.GetDemoBySlug(ctx, in.Slug)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrConflict
		}
	}

	return scanDemo(p.pool.QueryRow(ctx,
		`UPDATE demos SET
			business_name = $2, logo_text = $3, logo_url = $4, phone_number = $5,
			email = $6, whatsapp_number = $7, address = $8, google_maps_review_url = $9,
			primary_color = $10, hero_image = $11, service1_image = $12,
			service2_image = $13, service3_image = $14, service4_image = $15,
			service5_image = $16, service6_image = $17, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1
		 RETURNING `+demoColumns,
		id,
		models.Or(in.BusinessName, models.DefaultBusinessName),
		models.Or(in.LogoText, models.DefaultLogoText),
		in.LogoURL,
		models.Or(in.PhoneNumber, models.DefaultPhoneNumber),
		models.Or(in.Email, models.DefaultEmail),
		models.Or(in.WhatsappNumber, models.DefaultWhatsappNumber),
		models.Or(in.Address, models.DefaultAddress),
		in.GoogleMapsReviewURL,
		models.Or(in.PrimaryColor, models.DefaultPrimaryColor),
		in.HeroImage, in.Service1Image, in.Service2Image, in.Service3Image,
		in.Service4Image, in.Service5Image, in.Service6Image))
}

func (p *Postgres) DeleteDemo(ctx context.Context, id string) (bool, error) {
	tag, err := p.pool.Exec(ctx, "DELETE FROM demos WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
