package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/theme"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		path string
		want Context
	}{
		{"/", Context{Kind: KindDefault}},
		{"", Context{Kind: KindDefault}},
		{"/login", Context{Kind: KindDefault}},
		{"/dashboard", Context{Kind: KindDefault}},
		{"/dashboard/demos", Context{Kind: KindDefault}},
		{"/dashboard/demos/abc/edit", Context{Kind: KindDefault}},
		{"/diensten/plat-dak", Context{Kind: KindDefault, ServiceID: "plat-dak"}},
		{"/acme", Context{Kind: KindDemo, Slug: "acme"}},
		{"/acme-roofing", Context{Kind: KindDemo, Slug: "acme-roofing"}},
		{"/acme/diensten/plat-dak", Context{Kind: KindDemo, Slug: "acme", ServiceID: "plat-dak"}},
		{"/acme/unknown", Context{Kind: KindNotFound}},
		{"/acme/diensten/a/b", Context{Kind: KindNotFound}},
		{"/Not%20A%20Slug", Context{Kind: KindNotFound}},
		{"/login/extra", Context{Kind: KindNotFound}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Resolve(tc.path), "path %q", tc.path)
	}
}

func TestReservedRoutesShadowDemoSlugs(t *testing.T) {
	// Even with a demo named "dashboard" in the store, /dashboard is the
	// dashboard.
	ctx := context.Background()
	st := store.NewMemory()
	_, err := st.CreateDemo(ctx, models.DemoInput{Slug: "dashboard"})
	require.NoError(t, err)

	rc := Resolve("/dashboard")
	assert.Equal(t, KindDefault, rc.Kind)
	assert.Empty(t, rc.Slug)
}

func TestActivateDefault(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	color := "#336699"
	_, err := st.UpdateSiteSettings(ctx, models.SiteSettingsInput{PrimaryColor: &color})
	require.NoError(t, err)

	rc, err := NewResolver(st).Activate(ctx, Resolve("/"))
	require.NoError(t, err)
	assert.Equal(t, KindDefault, rc.Kind)
	assert.Equal(t, "#336699", rc.Settings.PrimaryColor)
	assert.Equal(t, theme.HexToHSL("#336699"), rc.Theme)
}

func TestActivateDemoCouplesSettingsAndTheme(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	name := "Acme Roofing"
	color := "#ff0000"
	_, err := st.CreateDemo(ctx, models.DemoInput{Slug: "acme", BusinessName: &name, PrimaryColor: &color})
	require.NoError(t, err)

	rc, err := NewResolver(st).Activate(ctx, Resolve("/acme"))
	require.NoError(t, err)
	assert.Equal(t, KindDemo, rc.Kind)
	assert.Equal(t, "Acme Roofing", rc.Settings.BusinessName)
	// The theme always comes from the same record as the content.
	assert.Equal(t, theme.HSL{H: 0, S: 100, L: 50}, rc.Theme)
}

func TestActivateUnknownSlugIsNotFoundNotError(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	rc, err := NewResolver(st).Activate(ctx, Resolve("/ghost"))
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, rc.Kind)
	// The page still has settings and a theme to render the 404 with.
	assert.Equal(t, models.DefaultPrimaryColor, rc.Settings.PrimaryColor)
	assert.Equal(t, theme.Fallback, rc.Theme)
}

func TestActivateDemoServiceDetail(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	_, err := st.CreateDemo(ctx, models.DemoInput{Slug: "acme"})
	require.NoError(t, err)

	rc, err := NewResolver(st).Activate(ctx, Resolve("/acme/diensten/plat-dak"))
	require.NoError(t, err)
	assert.Equal(t, KindDemo, rc.Kind)
	assert.Equal(t, "plat-dak", rc.ServiceID)
	require.NotNil(t, rc.Demo)
	assert.Equal(t, "acme", rc.Demo.Slug)
}
