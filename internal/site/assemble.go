package site

import (
	"fmt"
	"time"
)

const (
	repositoryURL = "https://github.com/Dinujaya-Sandaruwan/c.dinujaya.me"
	developerURL  = "http://dinujaya.me/"
)

// Copyright returns the footer copyright line for year.
func Copyright(year int) string {
	return fmt.Sprintf("Copyright © %d C Lang Documentation. All rights reserved.", year)
}

// Default assembles the configuration against the current wall clock.
func Default() *SiteConfiguration {
	return Assemble(time.Now())
}

// Assemble builds the site configuration. now is read once, for the
// copyright year; every other value is constant.
func Assemble(now time.Time) *SiteConfiguration {
	year := now.Year()
	return &SiteConfiguration{
		Title:   "C Documentation",
		Tagline: "Your Complete Guide to C Programming – From Basics to Mastery!",
		Favicon: "img/logo.png",
		URL:     "https://c.dinujaya.me",
		BaseURL: "/",

		OrganizationName: "Dinujaya Development",
		ProjectName:      "C Documentation",

		OnBrokenLinks:         LinkPolicyThrow,
		OnBrokenMarkdownLinks: LinkPolicyWarn,

		I18n: I18n{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},

		Presets: []Preset{{
			Name: PresetClassic,
			Options: PresetOptions{
				Docs: DocsConfig{
					RouteBasePath: "/",
					SidebarPath:   "./sidebars.ts",
					EditURL:       repositoryURL + "/tree/reader-feedbacks/",
				},
				Blog:  BlogDisabled{},
				Theme: PresetTheme{CustomCSS: "./src/css/custom.css"},
			},
		}},

		ThemeConfig: ThemeConfig{
			Image: "img/social-card.jpg",
			Navbar: Navbar{
				Title: "Lang Documentation",
				Logo:  Logo{Alt: "Site Logo", Src: "img/logo.png"},
				Items: []NavbarItem{
					{Link: Link{Href: developerURL, Label: "Meet The Developer"}, Position: PositionRight},
					{Link: Link{Href: repositoryURL, Label: "GitHub"}, Position: PositionRight},
				},
			},
			Footer: Footer{
				Style: FooterStyleDark,
				Links: []FooterGroup{
					{
						Title: "Other Recources",
						Items: []Link{
							{Label: "w3schools.com", Href: "https://www.w3schools.com/c/"},
							{Label: "devdocs.io", Href: "https://devdocs.io/c/"},
							{Label: "cppreference.com", Href: "https://en.cppreference.com/w/c/language"},
						},
					},
					{
						Title: "Connect with Dinujaya",
						Items: []Link{
							{Label: "Portfolio Website", Href: developerURL},
							{Label: "Github Profile", Href: "https://github.com/Dinujaya-Sandaruwan"},
							{Label: "LinkedIn Profile", Href: "https://www.linkedin.com/feed/"},
						},
					},
					{
						Title: "There's more to learn",
						Items: []Link{
							{Label: "C Programming and OOP with Dr. Chuck", Href: "https://youtu.be/PaPN51Mm5qQ"},
							{Label: "Brian Kernighan with Lex Fridman", Href: "https://www.youtube.com/watch?v=O9upVbGSBFo"},
							{Label: "Pointers in C / C++", Href: "https://youtu.be/zuegQmMdy8M"},
							{Label: "Preprocessing in-depth", Href: "https://youtu.be/6KNdGnUiRBM"},
						},
					},
				},
				Copyright: Copyright(year),
			},
			Prism: Prism{Theme: "github", DarkTheme: "dracula"},
		},

		Year: year,
	}
}
