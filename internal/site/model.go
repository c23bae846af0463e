package site

// SiteConfiguration is the complete Docusaurus configuration for the site.
// Field tags follow the key names the builder expects.
type SiteConfiguration struct {
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Favicon string `json:"favicon" yaml:"favicon"`
	URL     string `json:"url" yaml:"url"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	OrganizationName string `json:"organizationName" yaml:"organizationName"`
	ProjectName      string `json:"projectName" yaml:"projectName"`

	OnBrokenLinks         LinkPolicy `json:"onBrokenLinks" yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks LinkPolicy `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks"`

	I18n        I18n        `json:"i18n" yaml:"i18n"`
	Presets     []Preset    `json:"presets" yaml:"presets"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`

	// Year is the calendar year the configuration was evaluated in. It is the
	// source of the copyright string and is not part of the encoded output.
	Year int `json:"-" yaml:"-"`
}

// I18n lists the site locales.
type I18n struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// PresetOptions is the option bundle of the classic preset.
type PresetOptions struct {
	Docs  DocsConfig  `json:"docs" yaml:"docs"`
	Blog  BlogConfig  `json:"blog" yaml:"blog"`
	Theme PresetTheme `json:"theme" yaml:"theme"`
}

// DocsConfig configures the docs plugin.
type DocsConfig struct {
	RouteBasePath string `json:"routeBasePath" yaml:"routeBasePath"`
	SidebarPath   string `json:"sidebarPath" yaml:"sidebarPath"`
	EditURL       string `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
}

// PresetTheme is the build-time theme section of a preset.
type PresetTheme struct {
	CustomCSS string `json:"customCss" yaml:"customCss"`
}

// ThemeConfig is the render-time theme configuration.
type ThemeConfig struct {
	Image  string `json:"image" yaml:"image"`
	Navbar Navbar `json:"navbar" yaml:"navbar"`
	Footer Footer `json:"footer" yaml:"footer"`
	Prism  Prism  `json:"prism" yaml:"prism"`
}

type Navbar struct {
	Title string       `json:"title" yaml:"title"`
	Logo  Logo         `json:"logo" yaml:"logo"`
	Items []NavbarItem `json:"items" yaml:"items"`
}

type Logo struct {
	Alt string `json:"alt" yaml:"alt"`
	Src string `json:"src" yaml:"src"`
}

// Link is a labelled hyperlink. Exactly one of To (internal route) or Href
// (external URL) is set.
type Link struct {
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Label string `json:"label" yaml:"label"`
}

// Target returns whichever of To or Href is set.
func (l Link) Target() string {
	if l.To != "" {
		return l.To
	}
	return l.Href
}

type NavbarItem struct {
	Link     `yaml:",inline"`
	Position Position `json:"position" yaml:"position"`
}

type Footer struct {
	Style     FooterStyle   `json:"style" yaml:"style"`
	Links     []FooterGroup `json:"links" yaml:"links"`
	Copyright string        `json:"copyright" yaml:"copyright"`
}

type FooterGroup struct {
	Title string `json:"title" yaml:"title"`
	Items []Link `json:"items" yaml:"items"`
}

// Prism names the syntax highlighting themes from prism-react-renderer.
type Prism struct {
	Theme     string `json:"theme" yaml:"theme"`
	DarkTheme string `json:"darkTheme" yaml:"darkTheme"`
}

// Classic returns the options of the classic preset, or nil if it is absent.
func (c *SiteConfiguration) Classic() *PresetOptions {
	for i := range c.Presets {
		if c.Presets[i].Name == PresetClassic {
			return &c.Presets[i].Options
		}
	}
	return nil
}

// AllLinks returns every navbar and footer link in display order.
func (c *SiteConfiguration) AllLinks() []Link {
	links := make([]Link, 0, len(c.ThemeConfig.Navbar.Items))
	for _, item := range c.ThemeConfig.Navbar.Items {
		links = append(links, item.Link)
	}
	for _, group := range c.ThemeConfig.Footer.Links {
		links = append(links, group.Items...)
	}
	return links
}
