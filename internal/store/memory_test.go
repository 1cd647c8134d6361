package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
)

func strptr(s string) *string { return &s }

func TestSiteSettingsLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetSiteSettings(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := m.UpdateSiteSettings(ctx, models.SiteSettingsInput{
		BusinessName: strptr("Jansen Dakwerken"),
		PrimaryColor: strptr("#336699"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jansen Dakwerken", created.BusinessName)
	assert.Equal(t, "#336699", created.PrimaryColor)
	assert.Equal(t, models.DefaultPhoneNumber, created.PhoneNumber)

	// Replace, not merge: omitting a previously set field resets it to the
	// documented default, and the identity is preserved.
	updated, err := m.UpdateSiteSettings(ctx, models.SiteSettingsInput{
		BusinessName: strptr("Jansen Dakwerken BV"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.DefaultPrimaryColor, updated.PrimaryColor)

	got, err := m.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jansen Dakwerken BV", got.BusinessName)
}

func TestCreateDemoSlugConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.CreateDemo(ctx, models.DemoInput{Slug: "acme", BusinessName: strptr("Acme Roofing")})
	require.NoError(t, err)

	_, err = m.CreateDemo(ctx, models.DemoInput{Slug: "acme", BusinessName: strptr("Impostor")})
	assert.ErrorIs(t, err, ErrConflict)

	// The existing record is untouched.
	got, err := m.GetDemoBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Acme Roofing", got.BusinessName)
}

func TestDemoLookups(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	demo, err := m.CreateDemo(ctx, models.DemoInput{Slug: "acme"})
	require.NoError(t, err)

	byID, err := m.GetDemoByID(ctx, demo.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", byID.Slug)

	_, err = m.GetDemoByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetDemoBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListDemosNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, slug := range []string{"first", "second", "third"} {
		_, err := m.CreateDemo(ctx, models.DemoInput{Slug: slug})
		require.NoError(t, err)
	}

	demos, err := m.ListDemos(ctx)
	require.NoError(t, err)
	require.Len(t, demos, 3)
	assert.Equal(t, "third", demos[0].Slug)
	assert.Equal(t, "second", demos[1].Slug)
	assert.Equal(t, "first", demos[2].Slug)
}

func TestUpdateDemo(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	demo, err := m.CreateDemo(ctx, models.DemoInput{Slug: "acme", BusinessName: strptr("Acme Roofing")})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	updated, err := m.UpdateDemo(ctx, demo.ID, models.DemoInput{
		Slug:         "acme",
		BusinessName: strptr("Acme Roofing BV"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Roofing BV", updated.BusinessName)
	assert.Equal(t, demo.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(demo.UpdatedAt))

	_, err = m.UpdateDemo(ctx, "missing", models.DemoInput{Slug: "whatever"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDemoSlugRules(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	acme, err := m.CreateDemo(ctx, models.DemoInput{Slug: "acme"})
	require.NoError(t, err)
	_, err = m.CreateDemo(ctx, models.DemoInput{Slug: "beta"})
	require.NoError(t, err)

	// Another demo's slug in the payload is a conflict.
	_, err = m.UpdateDemo(ctx, acme.ID, models.DemoInput{Slug: "beta"})
	assert.ErrorIs(t, err, ErrConflict)

	// Its own slug is fine.
	_, err = m.UpdateDemo(ctx, acme.ID, models.DemoInput{Slug: "acme"})
	assert.NoError(t, err)

	// The slug never changes, even with a fresh value in the payload.
	updated, err := m.UpdateDemo(ctx, acme.ID, models.DemoInput{Slug: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "acme", updated.Slug)
	_, err = m.GetDemoBySlug(ctx, "renamed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDemo(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	demo, err := m.CreateDemo(ctx, models.DemoInput{Slug: "acme"})
	require.NoError(t, err)

	deleted, err := m.DeleteDemo(ctx, demo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.DeleteDemo(ctx, demo.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The slug is free for reuse after deletion.
	_, err = m.CreateDemo(ctx, models.DemoInput{Slug: "acme"})
	assert.NoError(t, err)
}

func TestContactSubmissions(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	sub, err := m.CreateContactSubmission(ctx, models.ContactSubmissionInput{
		Name:        "Jan",
		Email:       "jan@example.com",
		Phone:       "+31612345678",
		ServiceType: strptr("dakreparatie"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	subs, err := m.ListContactSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Jan", subs[0].Name)
}

func TestAdminUpsertAndLookup(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetAdminByEmail(ctx, "info@digiten.nl")
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := m.UpsertAdmin(ctx, "info@digiten.nl", "hash-one")
	require.NoError(t, err)

	// Upsert replaces the hash but keeps the identity; lookup ignores case.
	updated, err := m.UpsertAdmin(ctx, "info@digiten.nl", "hash-two")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := m.GetAdminByEmail(ctx, "INFO@DIGITEN.NL")
	require.NoError(t, err)
	assert.Equal(t, "hash-two", got.PasswordHash)
}
