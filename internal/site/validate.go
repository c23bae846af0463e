package site

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
)

// PrismThemes are the theme names exported by prism-react-renderer.
var PrismThemes = map[string]bool{
	"dracula": true, "duotoneDark": true, "duotoneLight": true, "github": true,
	"gruvboxMaterialDark": true, "gruvboxMaterialLight": true, "jettwaveDark": true,
	"jettwaveLight": true, "nightOwl": true, "nightOwlLight": true, "oceanicNext": true,
	"okaidia": true, "oneDark": true, "oneLight": true, "palenight": true,
	"shadesOfPurple": true, "synthwave84": true, "ultramin": true, "vsDark": true,
	"vsLight": true,
}

// Validate checks the structural invariants of the configuration and
// reports every violation at once. File existence is not checked here.
func (c *SiteConfiguration) Validate() error {
	v := &validator{}
	v.identity(c)
	v.i18n(c.I18n)
	v.presets(c.Presets)
	v.theme(c.ThemeConfig)
	if c.Year != 0 && !strings.Contains(c.ThemeConfig.Footer.Copyright, strconv.Itoa(c.Year)) {
		v.addf("themeConfig.footer.copyright: must contain evaluation year %d", c.Year)
	}
	if len(v.problems) > 0 {
		return errors.InvalidSite(v.problems)
	}
	return nil
}

type validator struct {
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) identity(c *SiteConfiguration) {
	if strings.TrimSpace(c.Title) == "" {
		v.addf("title: must not be empty")
	}
	if c.Favicon == "" {
		v.addf("favicon: must not be empty")
	}
	if err := checkExternalURL(c.URL); err != nil {
		v.addf("url: %v", err)
	} else if u, _ := url.Parse(c.URL); u.Path != "" && u.Path != "/" {
		v.addf("url: must not contain a path, use baseUrl instead")
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		v.addf("baseUrl: %q must start and end with /", c.BaseURL)
	}
	if c.OrganizationName == "" {
		v.addf("organizationName: must not be empty")
	}
	if c.ProjectName == "" {
		v.addf("projectName: must not be empty")
	}
	if !c.OnBrokenLinks.Valid() {
		v.addf("onBrokenLinks: invalid policy %q", c.OnBrokenLinks)
	}
	if !c.OnBrokenMarkdownLinks.Valid() {
		v.addf("onBrokenMarkdownLinks: invalid policy %q", c.OnBrokenMarkdownLinks)
	}
}

func (v *validator) i18n(cfg I18n) {
	if len(cfg.Locales) == 0 {
		v.addf("i18n.locales: must not be empty")
	}
	seen := map[string]bool{}
	for _, loc := range cfg.Locales {
		if _, err := language.Parse(loc); err != nil {
			v.addf("i18n.locales: invalid locale %q", loc)
		}
		if seen[loc] {
			v.addf("i18n.locales: duplicate locale %q", loc)
		}
		seen[loc] = true
	}
	if cfg.DefaultLocale == "" {
		v.addf("i18n.defaultLocale: must not be empty")
	} else if !seen[cfg.DefaultLocale] {
		v.addf("i18n.defaultLocale: %q is not listed in i18n.locales", cfg.DefaultLocale)
	}
}

func (v *validator) presets(presets []Preset) {
	classic := 0
	for i, p := range presets {
		field := fmt.Sprintf("presets[%d]", i)
		if p.Name != PresetClassic {
			v.addf("%s: unsupported preset %q", field, p.Name)
			continue
		}
		classic++
		if p.Options.Docs.SidebarPath == "" {
			v.addf("%s.docs.sidebarPath: must not be empty", field)
		}
		if p.Options.Docs.EditURL != "" {
			if err := checkExternalURL(p.Options.Docs.EditURL); err != nil {
				v.addf("%s.docs.editUrl: %v", field, err)
			}
		}
		switch blog := p.Options.Blog.(type) {
		case nil:
			v.addf("%s.blog: must be disabled or configured explicitly", field)
		case BlogEnabled:
			for name, policy := range map[string]LinkPolicy{
				"onInlineTags":           blog.OnInlineTags,
				"onInlineAuthors":        blog.OnInlineAuthors,
				"onUntruncatedBlogPosts": blog.OnUntruncatedBlogPosts,
			} {
				if policy != "" && !policy.Valid() {
					v.addf("%s.blog.%s: invalid policy %q", field, name, policy)
				}
			}
			if blog.EditURL != "" {
				if err := checkExternalURL(blog.EditURL); err != nil {
					v.addf("%s.blog.editUrl: %v", field, err)
				}
			}
		}
	}
	if classic != 1 {
		v.addf("presets: expected exactly one classic preset, found %d", classic)
	}
}

func (v *validator) theme(t ThemeConfig) {
	for i, item := range t.Navbar.Items {
		field := fmt.Sprintf("themeConfig.navbar.items[%d]", i)
		v.link(field, item.Link)
		if !item.Position.Valid() {
			v.addf("%s.position: invalid position %q", field, item.Position)
		}
	}
	if t.Navbar.Logo.Src == "" {
		v.addf("themeConfig.navbar.logo.src: must not be empty")
	}
	if !t.Footer.Style.Valid() {
		v.addf("themeConfig.footer.style: invalid style %q", t.Footer.Style)
	}
	for i, group := range t.Footer.Links {
		field := fmt.Sprintf("themeConfig.footer.links[%d]", i)
		if strings.TrimSpace(group.Title) == "" {
			v.addf("%s.title: must not be empty", field)
		}
		for j, item := range group.Items {
			v.link(fmt.Sprintf("%s.items[%d]", field, j), item)
		}
	}
	if !PrismThemes[t.Prism.Theme] {
		v.addf("themeConfig.prism.theme: unknown theme %q", t.Prism.Theme)
	}
	if !PrismThemes[t.Prism.DarkTheme] {
		v.addf("themeConfig.prism.darkTheme: unknown theme %q", t.Prism.DarkTheme)
	}
}

func (v *validator) link(field string, l Link) {
	if strings.TrimSpace(l.Label) == "" {
		v.addf("%s.label: must not be empty", field)
	}
	switch {
	case l.To != "" && l.Href != "":
		v.addf("%s: set either to or href, not both", field)
	case l.To == "" && l.Href == "":
		v.addf("%s: one of to or href is required", field)
	case l.To != "":
		if !strings.HasPrefix(l.To, "/") {
			v.addf("%s.to: %q must be a rooted route", field, l.To)
		}
	default:
		if err := checkExternalURL(l.Href); err != nil {
			v.addf("%s.href: %v", field, err)
		}
	}
}

// checkExternalURL accepts absolute http and https URLs with a host.
func checkExternalURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q has no host", raw)
	}
	return nil
}

// IsExternalURL reports whether raw is an absolute http(s) URL.
func IsExternalURL(raw string) bool {
	return checkExternalURL(raw) == nil
}
