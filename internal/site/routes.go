package site

import (
	"path"
	"sort"
	"strings"
)

// JoinRoute joins URL path segments into a rooted, slash-cleaned route.
// Trailing slashes are dropped except for the root itself.
func JoinRoute(elems ...string) string {
	return path.Join(append([]string{"/"}, elems...)...)
}

// RouteSet lists the route prefixes the builder generates for each content
// section of the configuration.
type RouteSet struct {
	sections map[string]string
}

const (
	SectionDocs = "docs"
	SectionBlog = "blog"
)

// Routes derives the content section prefixes. The blog prefix is present
// only when the blog variant is enabled.
func (c *SiteConfiguration) Routes() RouteSet {
	rs := RouteSet{sections: map[string]string{}}
	preset := c.Classic()
	if preset == nil {
		return rs
	}
	rs.sections[SectionDocs] = JoinRoute(c.BaseURL, preset.Docs.RouteBasePath)
	if blog, ok := preset.Blog.(BlogEnabled); ok {
		rs.sections[SectionBlog] = JoinRoute(c.BaseURL, blog.Route())
	}
	return rs
}

// Prefix returns the route prefix of section and whether it is generated.
func (r RouteSet) Prefix(section string) (string, bool) {
	p, ok := r.sections[section]
	return p, ok
}

// Prefixes returns every generated prefix, sorted.
func (r RouteSet) Prefixes() []string {
	out := make([]string, 0, len(r.sections))
	for _, p := range r.sections {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Has reports whether route falls under section's prefix.
func (r RouteSet) Has(section, route string) bool {
	prefix, ok := r.sections[section]
	if !ok {
		return false
	}
	return HasRoutePrefix(route, prefix)
}

// HasRoutePrefix reports whether route equals prefix or lies beneath it.
func HasRoutePrefix(route, prefix string) bool {
	route = JoinRoute(route)
	if prefix == "/" {
		return true
	}
	return route == prefix || strings.HasPrefix(route, prefix+"/")
}
