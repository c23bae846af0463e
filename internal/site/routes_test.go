package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinRoute(t *testing.T) {
	tests := []struct {
		elems []string
		want  string
	}{
		{[]string{"/", "/"}, "/"},
		{[]string{"/", "blog"}, "/blog"},
		{[]string{"/base/", "/docs/"}, "/base/docs"},
		{[]string{"docs", "intro"}, "/docs/intro"},
		{nil, "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinRoute(tt.elems...), "%v", tt.elems)
	}
}

func TestRoutes_BlogDisabledHasNoBlogPrefix(t *testing.T) {
	routes := Default().Routes()

	docs, ok := routes.Prefix(SectionDocs)
	assert.True(t, ok)
	assert.Equal(t, "/", docs)

	_, ok = routes.Prefix(SectionBlog)
	assert.False(t, ok)
	assert.Equal(t, []string{"/"}, routes.Prefixes())
	assert.False(t, routes.Has(SectionBlog, "/blog/first-post"))
	assert.True(t, routes.Has(SectionDocs, "/pointers"))
}

func TestRoutes_BlogEnabled(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "/c/"
	cfg.Classic().Docs.RouteBasePath = "docs"
	cfg.Classic().Blog = BlogEnabled{}

	routes := cfg.Routes()
	assert.Equal(t, []string{"/c/blog", "/c/docs"}, routes.Prefixes())
	assert.True(t, routes.Has(SectionBlog, "/c/blog/post"))
	assert.False(t, routes.Has(SectionDocs, "/c/blog/post"))
	assert.False(t, routes.Has(SectionDocs, "/c/docsextra"))
}

func TestRoutes_NoPreset(t *testing.T) {
	cfg := &SiteConfiguration{}
	assert.Empty(t, cfg.Routes().Prefixes())
}
