// Package tenant maps request paths to a rendering context: the default
// site, a named demo, or not-found. Resolving a demo and loading its
// settings/theme happen in one step, so a page can never render a demo's
// content with the default theme.
package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/models"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/store"
	"github.com/DigiTEN0/Digiten-Demo-Websites/internal/theme"
)

// Kind classifies a resolved path.
type Kind int

const (
	KindDefault Kind = iota
	KindDemo
	KindNotFound
)

// Context is the outcome of path resolution, before any store access.
type Context struct {
	Kind      Kind
	Slug      string
	ServiceID string
}

// Reserved route names shadow demo slugs: /dashboard is always the dashboard
// even when a demo named "dashboard" exists.
var reserved = map[string]bool{
	"login":     true,
	"dashboard": true,
	"diensten":  true,
	"api":       true,
	"assets":    true,
	"static":    true,
}

// Reserved reports whether name collides with an application route.
func Reserved(name string) bool {
	return reserved[name]
}

// Resolve classifies a request path. Precedence, most specific first:
// reserved application routes, then /:slug/diensten/:id, then /:slug.
func Resolve(path string) Context {
	path = strings.Trim(path, "/")
	if path == "" {
		return Context{Kind: KindDefault}
	}
	segs := strings.Split(path, "/")

	if reserved[segs[0]] {
		switch segs[0] {
		case "login":
			if len(segs) == 1 {
				return Context{Kind: KindDefault}
			}
		case "dashboard":
			// Dashboard and all sub-paths.
			return Context{Kind: KindDefault}
		case "diensten":
			if len(segs) == 2 {
				return Context{Kind: KindDefault, ServiceID: segs[1]}
			}
		}
		return Context{Kind: KindNotFound}
	}

	if !models.ValidSlug(segs[0]) {
		return Context{Kind: KindNotFound}
	}

	switch {
	case len(segs) == 1:
		return Context{Kind: KindDemo, Slug: segs[0]}
	case len(segs) == 3 && segs[1] == "diensten":
		return Context{Kind: KindDemo, Slug: segs[0], ServiceID: segs[2]}
	}
	return Context{Kind: KindNotFound}
}

// RenderContext is an activated Context: the resolved settings and the theme
// derived from them, ready for a page to render.
type RenderContext struct {
	Context
	Demo     *models.Demo
	Settings models.EffectiveSettings
	Theme    theme.HSL
}

// Resolver activates contexts against a store.
type Resolver struct {
	store store.Store
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s}
}

// Activate fetches the settings behind rc and derives the theme. A demo slug
// with no matching record downgrades to KindNotFound; that is a page state,
// not an error. Errors are reserved for store failures.
func (r *Resolver) Activate(ctx context.Context, rc Context) (*RenderContext, error) {
	out := &RenderContext{Context: rc}

	site, err := r.store.GetSiteSettings(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if rc.Kind == KindDemo {
		demo, err := r.store.GetDemoBySlug(ctx, rc.Slug)
		if errors.Is(err, store.ErrNotFound) {
			out.Kind = KindNotFound
			out.Settings = models.ResolveEffective(nil, site)
			out.Theme = theme.HexToHSL(out.Settings.PrimaryColor)
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out.Demo = demo
	}

	out.Settings = models.ResolveEffective(out.Demo, site)
	out.Theme = theme.HexToHSL(out.Settings.PrimaryColor)
	return out, nil
}
