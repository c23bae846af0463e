// Package refcheck verifies that files named by the site configuration exist
// in the site source tree.
package refcheck

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// Kind says how a reference is resolved.
type Kind int

const (
	// KindStatic paths are served from the static directory (favicon, images).
	KindStatic Kind = iota
	// KindSource paths are relative to the site root (sidebars, stylesheets).
	KindSource
)

// Reference is one file path named by the configuration.
type Reference struct {
	Field string
	Path  string
	Kind  Kind
}

// Layout locates the site source tree.
type Layout struct {
	Root      string
	StaticDir string // relative to Root
}

// Resolve returns the on-disk location of ref.
func (l Layout) Resolve(ref Reference) string {
	p := filepath.FromSlash(strings.TrimPrefix(ref.Path, "/"))
	if ref.Kind == KindStatic {
		return filepath.Join(l.Root, l.StaticDir, p)
	}
	return filepath.Join(l.Root, p)
}

// References lists every file path in cfg, in a stable order.
func References(cfg *site.SiteConfiguration) []Reference {
	refs := []Reference{
		{Field: "favicon", Path: cfg.Favicon, Kind: KindStatic},
		{Field: "themeConfig.image", Path: cfg.ThemeConfig.Image, Kind: KindStatic},
		{Field: "themeConfig.navbar.logo.src", Path: cfg.ThemeConfig.Navbar.Logo.Src, Kind: KindStatic},
	}
	if preset := cfg.Classic(); preset != nil {
		refs = append(refs,
			Reference{Field: "presets.classic.docs.sidebarPath", Path: preset.Docs.SidebarPath, Kind: KindSource},
			Reference{Field: "presets.classic.theme.customCss", Path: preset.Theme.CustomCSS, Kind: KindSource},
		)
	}
	out := refs[:0]
	for _, r := range refs {
		if r.Path != "" {
			out = append(out, r)
		}
	}
	return out
}

// Check returns the references whose files are absent, and a filesystem
// error listing them when any are.
func Check(layout Layout, cfg *site.SiteConfiguration) ([]Reference, error) {
	var missing []Reference
	for _, ref := range References(cfg) {
		resolved := layout.Resolve(ref)
		info, err := os.Stat(resolved)
		if err == nil && !info.IsDir() {
			continue
		}
		slog.Warn("Referenced file missing", logfields.Path(resolved), slog.String("field", ref.Field))
		missing = append(missing, ref)
	}
	if len(missing) == 0 {
		return nil, nil
	}
	paths := make([]string, 0, len(missing))
	for _, m := range missing {
		paths = append(paths, m.Path)
	}
	return missing, errors.MissingReferences(paths)
}
