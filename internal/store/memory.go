package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
)

// Memory is a map-backed Store. A single mutex serializes all operations, so
// writes are atomic with respect to concurrent reads. Fine for a handful of
// admin operators; it is not a multi-process store.
type Memory struct {
	mu          sync.Mutex
	admins      map[string]models.AdminUser
	settings    *models.SiteSettings
	submissions []models.ContactSubmission
	demos       map[string]memDemo
	seq         int
}

type memDemo struct {
	models.Demo
	seq int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		admins: make(map[string]models.AdminUser),
		demos:  make(map[string]memDemo),
	}
}

func (m *Memory) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, admin := range m.admins {
		if strings.EqualFold(admin.Email, email) {
			a := admin
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpsertAdmin(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, admin := range m.admins {
		if strings.EqualFold(admin.Email, email) {
			admin.PasswordHash = passwordHash
			m.admins[id] = admin
			a := admin
			return &a, nil
		}
	}
	admin := models.AdminUser{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash}
	m.admins[admin.ID] = admin
	return &admin, nil
}

func (m *Memory) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.settings == nil {
		return nil, ErrNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *Memory) UpdateSiteSettings(ctx context.Context, in models.SiteSettingsInput) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	if m.settings != nil {
		id = m.settings.ID
	}
	settings := models.SiteSettings{
		ID:                  id,
		BusinessName:        models.Or(in.BusinessName, models.DefaultBusinessName),
		LogoText:            models.Or(in.LogoText, models.DefaultLogoText),
		LogoURL:             in.LogoURL,
		PhoneNumber:         models.Or(in.PhoneNumber, models.DefaultPhoneNumber),
		Email:               models.Or(in.Email, models.DefaultEmail),
		WhatsappNumber:      models.Or(in.WhatsappNumber, models.DefaultWhatsappNumber),
		Address:             models.Or(in.Address, models.DefaultAddress),
		GoogleMapsReviewURL: in.GoogleMapsReviewURL,
		PrimaryColor:        models.Or(in.PrimaryColor, models.DefaultPrimaryColor),
		UpdatedAt:           time.Now(),
	}
	m.settings = &settings
	s := settings
	return &s, nil
}

func (m *Memory) CreateContactSubmission(ctx context.Context, in models.ContactSubmissionInput) (*models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := models.ContactSubmission{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		ServiceType:    in.ServiceType,
		Message:        in.Message,
		ProjectDetails: in.ProjectDetails,
		CreatedAt:      time.Now(),
	}
	m.submissions = append(m.submissions, sub)
	return &sub, nil
}

func (m *Memory) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.ContactSubmission, len(m.submissions))
	copy(out, m.submissions)
	return out, nil
}

func (m *Memory) ListDemos(ctx context.Context) ([]models.Demo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]memDemo, 0, len(m.demos))
	for _, d := range m.demos {
		all = append(all, d)
	}
	// Newest first; the insertion sequence breaks created-at ties.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].seq > all[j].seq
	})

	out := make([]models.Demo, len(all))
	for i, d := range all {
		out[i] = d.Demo
	}
	return out, nil
}

func (m *Memory) GetDemoBySlug(ctx context.Context, slug string) (*models.Demo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.demos {
		if d.Slug == slug {
			demo := d.Demo
			return &demo, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetDemoByID(ctx context.Context, id string) (*models.Demo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.demos[id]
	if !ok {
		return nil, ErrNotFound
	}
	demo := d.Demo
	return &demo, nil
}

func (m *Memory) CreateDemo(ctx context.Context, in models.DemoInput) (*models.Demo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.demos {
		if d.Slug == in.Slug {
			return nil, ErrConflict
		}
	}

	now := time.Now()
	m.seq++
	demo := models.Demo{
		ID:        uuid.NewString(),
		Slug:      in.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDemoInput(&demo, in)
	m.demos[demo.ID] = memDemo{Demo: demo, seq: m.seq}
	return &demo, nil
}

func (m *Memory) UpdateDemo(ctx context.Context, id string, in models.DemoInput) (*models.Demo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.demos[id]
	if !ok {
		return nil, ErrNotFound
	}

	// A payload slug that belongs to another demo is rejected outright.
	if in.Slug != "" && in.Slug != existing.Slug {
		for _, d := range m.demos {
			if d.ID != id && d.Slug == in.Slug {
				return nil, ErrConflict
			}
		}
	}

	// Slug is immutable; the stored slug wins over anything in the payload.
	demo := models.Demo{
		ID:        existing.ID,
		Slug:      existing.Slug,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	applyDemoInput(&demo, in)
	m.demos[id] = memDemo{Demo: demo, seq: existing.seq}
	return &demo, nil
}

func (m *Memory) DeleteDemo(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.demos[id]; !ok {
		return false, nil
	}
	delete(m.demos, id)
	return true, nil
}

// applyDemoInput fills every non-identity field of demo from the payload,
// with omitted fields taking their documented defaults (replace, not merge).
func applyDemoInput(demo *models.Demo, in models.DemoInput) {
	demo.BusinessName = models.Or(in.BusinessName, models.DefaultBusinessName)
	demo.LogoText = models.Or(in.LogoText, models.DefaultLogoText)
	demo.LogoURL = in.LogoURL
	demo.PhoneNumber = models.Or(in.PhoneNumber, models.DefaultPhoneNumber)
	demo.Email = models.Or(in.Email, models.DefaultEmail)
	demo.WhatsappNumber = models.Or(in.WhatsappNumber, models.DefaultWhatsappNumber)
	demo.Address = models.Or(in.Address, models.DefaultAddress)
	demo.GoogleMapsReviewURL = in.GoogleMapsReviewURL
	demo.PrimaryColor = models.Or(in.PrimaryColor, models.DefaultPrimaryColor)
	demo.HeroImage = in.HeroImage
	demo.Service1Image = in.Service1Image
	demo.Service2Image = in.Service2Image
	demo.Service3Image = in.Service3Image
	demo.Service4Image = in.Service4Image
	demo.Service5Image = in.Service5Image
	demo.Service6Image = in.Service6Image
}
