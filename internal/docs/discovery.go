// Package docs discovers the markdown sources of the docs plugin and computes
// the routes the builder serves them under.
package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/frontmatter"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// Doc is one markdown source under the docs root.
type Doc struct {
	Path        string // Absolute path on disk
	RelPath     string // Slash-separated path relative to the docs root
	ID          string
	Route       string
	FrontMatter frontmatter.Fields
	Body        []byte
}

var numberPrefix = regexp.MustCompile(`^\d+\s*[-_.]+\s*`)

// StripNumberPrefix removes an ordering prefix such as "01-" from a path
// segment. Segments that are only a number keep it.
func StripNumberPrefix(segment string) string {
	stripped := numberPrefix.ReplaceAllString(segment, "")
	if stripped == "" {
		return segment
	}
	return stripped
}

// IsDocFile reports whether name is a markdown source.
func IsDocFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

// Discover walks docsDir and returns every routable doc sorted by RelPath.
// Partials (names starting with "_"), hidden entries and drafts are skipped.
func Discover(docsDir string, cfg *site.SiteConfiguration) ([]Doc, error) {
	preset := cfg.Classic()
	if preset == nil {
		return nil, fmt.Errorf("classic preset not configured")
	}
	base := site.JoinRoute(cfg.BaseURL, preset.Docs.RouteBasePath)

	root, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve docs dir: %w", err)
	}

	var docs []Doc
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if p != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsDocFile(name) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		// #nosec G304 - path comes from walking the docs root
		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		fields, body, err := frontmatter.Parse(content)
		if err != nil {
			return fmt.Errorf("front matter of %s: %w", rel, err)
		}
		if fields.Draft {
			slog.Debug("Skipping draft doc", logfields.Source(rel))
			return nil
		}
		doc := Doc{Path: p, RelPath: filepath.ToSlash(rel), FrontMatter: fields, Body: body}
		doc.ID, doc.Route = identify(doc.RelPath, fields, base)
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover docs in %s: %w", docsDir, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs, nil
}

// identify computes the doc ID and route for a slash-separated relative path.
func identify(rel string, fields frontmatter.Fields, base string) (id, route string) {
	dir, file := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")

	var segments []string
	if dir != "" {
		for _, s := range strings.Split(dir, "/") {
			segments = append(segments, StripNumberPrefix(s))
		}
	}
	cleanDir := strings.Join(segments, "/")

	name := StripNumberPrefix(strings.TrimSuffix(file, path.Ext(file)))
	baseID := name
	if fields.ID != "" {
		baseID = fields.ID
	}
	id = path.Join(cleanDir, baseID)

	var slug string
	switch {
	case strings.HasPrefix(fields.Slug, "/"):
		slug = fields.Slug
	case fields.Slug != "":
		slug = path.Join(cleanDir, fields.Slug)
	case isCategoryIndex(name, segments):
		slug = cleanDir
	default:
		slug = path.Join(cleanDir, baseID)
	}
	return id, site.JoinRoute(base, slug)
}

func isCategoryIndex(name string, dirSegments []string) bool {
	lower := strings.ToLower(name)
	if lower == "index" || lower == "readme" {
		return true
	}
	return len(dirSegments) > 0 && strings.EqualFold(name, dirSegments[len(dirSegments)-1])
}
