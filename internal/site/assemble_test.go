package site

import (
	"encoding/json"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestAssemble_Copyright2025(t *testing.T) {
	cfg := Assemble(at(2025, time.March, 1))
	assert.Equal(t, "Copyright © 2025 C Lang Documentation. All rights reserved.", cfg.ThemeConfig.Footer.Copyright)
	assert.Equal(t, 2025, cfg.Year)
}

func TestAssemble_CopyrightTracksYear(t *testing.T) {
	for _, year := range []int{1999, 2024, 2026, 2100} {
		cfg := Assemble(at(year, time.July, 4))
		assert.Contains(t, cfg.ThemeConfig.Footer.Copyright, strconv.Itoa(year))
	}
}

func TestAssemble_IsValid(t *testing.T) {
	require.NoError(t, Assemble(at(2025, time.January, 1)).Validate())
	require.NoError(t, Default().Validate())
}

func TestAssemble_DefaultLocaleListed(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.True(t, slices.Contains(cfg.I18n.Locales, cfg.I18n.DefaultLocale))
}

func TestAssemble_LinksHaveLabelsAndURLs(t *testing.T) {
	cfg := Default()
	links := cfg.AllLinks()
	require.Len(t, links, 12)
	for _, l := range links {
		assert.NotEmpty(t, strings.TrimSpace(l.Label))
		assert.Empty(t, l.To, "all links are external")
		u, err := url.Parse(l.Href)
		require.NoError(t, err, l.Label)
		assert.NotEmpty(t, u.Scheme, l.Label)
		assert.NotEmpty(t, u.Host, l.Label)
	}
}

func TestAssemble_GitHubNavbarLink(t *testing.T) {
	cfg := Default()
	var found *NavbarItem
	for i := range cfg.ThemeConfig.Navbar.Items {
		if cfg.ThemeConfig.Navbar.Items[i].Label == "GitHub" {
			found = &cfg.ThemeConfig.Navbar.Items[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "https://github.com/Dinujaya-Sandaruwan/c.dinujaya.me", found.Href)
	assert.Equal(t, PositionRight, found.Position)
}

func TestAssemble_ClassicPreset(t *testing.T) {
	cfg := Default()
	preset := cfg.Classic()
	require.NotNil(t, preset)
	assert.Equal(t, "/", preset.Docs.RouteBasePath)
	assert.Equal(t, "./sidebars.ts", preset.Docs.SidebarPath)
	assert.Equal(t, "https://github.com/Dinujaya-Sandaruwan/c.dinujaya.me/tree/reader-feedbacks/", preset.Docs.EditURL)
	assert.Equal(t, "./src/css/custom.css", preset.Theme.CustomCSS)
	assert.IsType(t, BlogDisabled{}, preset.Blog)
	assert.False(t, preset.Blog.Enabled())
}

func TestAssemble_LinkPolicies(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LinkPolicyThrow, cfg.OnBrokenLinks)
	assert.Equal(t, LinkPolicyWarn, cfg.OnBrokenMarkdownLinks)
}

func TestAssemble_IdempotentWithinYear(t *testing.T) {
	a, err := json.Marshal(Assemble(at(2025, time.January, 1)))
	require.NoError(t, err)
	b, err := json.Marshal(Assemble(at(2025, time.December, 31)))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAssemble_YearBoundaryOnlyChangesCopyright(t *testing.T) {
	before := Assemble(at(2025, time.December, 31))
	after := Assemble(at(2026, time.January, 1))
	assert.NotEqual(t, before.ThemeConfig.Footer.Copyright, after.ThemeConfig.Footer.Copyright)

	after.ThemeConfig.Footer.Copyright = before.ThemeConfig.Footer.Copyright
	a, err := json.Marshal(before)
	require.NoError(t, err)
	b, err := json.Marshal(after)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestAssemble_ReturnsIndependentValues(t *testing.T) {
	a := Default()
	b := Default()
	a.ThemeConfig.Navbar.Items[0].Label = "changed"
	assert.Equal(t, "Meet The Developer", b.ThemeConfig.Navbar.Items[0].Label)
}
