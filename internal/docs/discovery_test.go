package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/frontmatter"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func TestIdentify(t *testing.T) {
	tests := []struct {
		name   string
		rel    string
		fields frontmatter.Fields
		base   string
		id     string
		route  string
	}{
		{"root doc", "intro.md", frontmatter.Fields{}, "/", "intro", "/intro"},
		{"root index", "index.md", frontmatter.Fields{}, "/", "index", "/"},
		{"number prefixes", "01-basics/02-pointers.mdx", frontmatter.Fields{}, "/", "basics/pointers", "/basics/pointers"},
		{"category index", "basics/README.md", frontmatter.Fields{}, "/", "basics/README", "/basics"},
		{"same name as dir", "arrays/arrays.md", frontmatter.Fields{}, "/", "arrays/arrays", "/arrays"},
		{"front matter id", "basics/x.md", frontmatter.Fields{ID: "variables"}, "/", "basics/variables", "/basics/variables"},
		{"relative slug", "basics/x.md", frontmatter.Fields{Slug: "vars"}, "/", "basics/x", "/basics/vars"},
		{"absolute slug", "basics/x.md", frontmatter.Fields{Slug: "/"}, "/", "basics/x", "/"},
		{"docs base path", "intro.md", frontmatter.Fields{}, "/c/docs", "intro", "/c/docs/intro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, route := identify(tt.rel, tt.fields, tt.base)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.route, route)
		})
	}
}

func TestStripNumberPrefix(t *testing.T) {
	assert.Equal(t, "intro", StripNumberPrefix("01-intro"))
	assert.Equal(t, "intro", StripNumberPrefix("1. intro"))
	assert.Equal(t, "2024", StripNumberPrefix("2024"))
	assert.Equal(t, "01-", StripNumberPrefix("01-"))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "intro.md", "---\nslug: /\n---\n# C\n")
	writeDoc(t, root, "01-basics/01-variables.md", "# Variables\n")
	writeDoc(t, root, "01-basics/_partial.md", "shared\n")
	writeDoc(t, root, "_drafts/wip.md", "wip\n")
	writeDoc(t, root, "advanced/unfinished.md", "---\ndraft: true\n---\nsoon\n")
	writeDoc(t, root, "advanced/pointers.mdx", "# Pointers\n")
	writeDoc(t, root, "img/diagram.png", "png")

	docs, err := Discover(root, site.Default())
	require.NoError(t, err)

	got := map[string]string{}
	for _, d := range docs {
		got[d.RelPath] = d.Route
	}
	assert.Equal(t, map[string]string{
		"intro.md":                  "/",
		"01-basics/01-variables.md": "/basics/variables",
		"advanced/pointers.mdx":     "/advanced/pointers",
	}, got)
	require.Len(t, docs, 3)
	assert.Equal(t, "intro.md", docs[2].RelPath)
	assert.Equal(t, "# C\n", string(docs[2].Body))
}

func TestDiscover_BadFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "broken.md", "---\nslug: /x\n")
	_, err := Discover(root, site.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md")
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), site.Default())
	require.Error(t, err)
}

func TestIndex(t *testing.T) {
	idx := NewIndex([]Doc{
		{RelPath: "a.md", Route: "/a"},
		{RelPath: "b.md", Route: "/a"},
		{RelPath: "c.md", Route: "/c"},
	})
	d, ok := idx.ByRoute("/a/")
	require.True(t, ok)
	assert.Equal(t, "a.md", d.RelPath)

	_, ok = idx.BySource("./b.md")
	assert.True(t, ok)
	assert.Equal(t, 2, idx.Len())
}
