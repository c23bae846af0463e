// Package linkcheck finds broken links in doc sources and applies the site's
// onBrokenLinks and onBrokenMarkdownLinks policies to them.
package linkcheck

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/docs"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// Kind distinguishes the two broken-link policies.
type Kind string

const (
	// KindRoute is a link to a site route, governed by onBrokenLinks.
	KindRoute Kind = "route"
	// KindMarkdown is a link to a .md/.mdx source, governed by onBrokenMarkdownLinks.
	KindMarkdown Kind = "markdown"
)

// Finding is one broken link.
type Finding struct {
	Source string // doc path relative to the docs root
	Link   string // destination as written
	Target string // resolved route or source path
	Kind   Kind
	Policy site.LinkPolicy
	Reason string
}

// Report summarizes a check run.
type Report struct {
	Checked  int
	Findings []Finding
}

// Failures returns findings whose policy is throw.
func (r Report) Failures() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Policy == site.LinkPolicyThrow {
			out = append(out, f)
		}
	}
	return out
}

// Err returns a links error when any finding has the throw policy.
func (r Report) Err() error {
	failures := r.Failures()
	if len(failures) == 0 {
		return nil
	}
	return errors.BrokenLinks(len(failures)).WithContext("first", failures[0].Source+": "+failures[0].Link)
}

// Checker resolves doc links against the discovered docs and static files.
type Checker struct {
	cfg       *site.SiteConfiguration
	docs      []docs.Doc
	index     *docs.Index
	staticDir string
	routes    site.RouteSet
}

// NewChecker builds a checker. staticDir may be empty when the site has no
// static directory.
func NewChecker(cfg *site.SiteConfiguration, docList []docs.Doc, staticDir string) *Checker {
	return &Checker{
		cfg:       cfg,
		docs:      docList,
		index:     docs.NewIndex(docList),
		staticDir: staticDir,
		routes:    cfg.Routes(),
	}
}

// Check inspects every doc. Findings under the ignore policy are dropped;
// warn findings are logged at warn level and throw findings at error level.
func (c *Checker) Check(ctx context.Context) (Report, error) {
	var report Report
	for i := range c.docs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		doc := &c.docs[i]
		for _, link := range ExtractLinks(doc.Body) {
			report.Checked++
			f, broken := c.checkLink(doc, link)
			if !broken || f.Policy == site.LinkPolicyIgnore {
				continue
			}
			level := slog.LevelWarn
			if f.Policy == site.LinkPolicyThrow {
				level = slog.LevelError
			}
			slog.Log(ctx, level, "Broken link", logfields.Source(f.Source), logfields.Link(f.Link),
				logfields.Policy(string(f.Policy)), slog.String("reason", f.Reason))
			report.Findings = append(report.Findings, f)
		}
	}
	slog.Info("Link check complete", logfields.Count(report.Checked), slog.Int("broken", len(report.Findings)))
	return report, nil
}

func (c *Checker) checkLink(doc *docs.Doc, link string) (Finding, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return Finding{Source: doc.RelPath, Link: link, Target: link, Kind: KindRoute,
			Policy: c.cfg.OnBrokenLinks, Reason: "unparseable URL"}, true
	}
	if u.Scheme != "" || u.Host != "" || u.Path == "" {
		// External, protocol-relative, or same-page anchor.
		return Finding{}, false
	}

	if docs.IsDocFile(u.Path) {
		target := path.Clean(u.Path)
		if !strings.HasPrefix(target, "/") {
			target = path.Join(path.Dir(doc.RelPath), target)
		}
		target = strings.TrimPrefix(target, "/")
		if _, ok := c.index.BySource(target); ok {
			return Finding{}, false
		}
		return Finding{Source: doc.RelPath, Link: link, Target: target, Kind: KindMarkdown,
			Policy: c.cfg.OnBrokenMarkdownLinks, Reason: "no doc source at " + target}, true
	}

	route := c.resolveRoute(doc.Route, u.Path)
	if _, ok := c.index.ByRoute(route); ok || c.isStatic(route) {
		return Finding{}, false
	}
	reason := "no page at " + route
	if _, blogOn := c.routes.Prefix(site.SectionBlog); !blogOn &&
		site.HasRoutePrefix(route, site.JoinRoute(c.cfg.BaseURL, site.DefaultBlogRouteBasePath)) {
		reason = "blog is disabled, " + route + " is never generated"
	}
	return Finding{Source: doc.RelPath, Link: link, Target: route, Kind: KindRoute,
		Policy: c.cfg.OnBrokenLinks, Reason: reason}, true
}

// resolveRoute applies browser resolution of a link path against the route
// of the doc that contains it. Rooted links get the site baseUrl.
func (c *Checker) resolveRoute(from, p string) string {
	if strings.HasPrefix(p, "/") {
		base := site.JoinRoute(c.cfg.BaseURL)
		if base != "/" && site.HasRoutePrefix(p, base) {
			return site.JoinRoute(p)
		}
		return site.JoinRoute(c.cfg.BaseURL, p)
	}
	return site.JoinRoute(path.Dir(from), p)
}

func (c *Checker) isStatic(route string) bool {
	if c.staticDir == "" {
		return false
	}
	rel := strings.TrimPrefix(route, site.JoinRoute(c.cfg.BaseURL))
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(c.staticDir, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}
