// Package editlink builds "edit this page" URLs from the docs editUrl template.
package editlink

import (
	"path"
	"strings"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// Builder joins the configured editUrl with a source path relative to the
// site root, matching how the builder renders edit links.
type Builder struct {
	base    string
	docsDir string
}

// NewBuilder returns a Builder for cfg, or nil when the docs plugin has no
// editUrl. docsDir is the docs root relative to the site root.
func NewBuilder(cfg *site.SiteConfiguration, docsDir string) *Builder {
	preset := cfg.Classic()
	if preset == nil || preset.Docs.EditURL == "" {
		return nil
	}
	return &Builder{
		base:    strings.TrimSuffix(preset.Docs.EditURL, "/"),
		docsDir: strings.Trim(path.Clean("/"+strings.ReplaceAll(docsDir, "\\", "/")), "/"),
	}
}

// URL returns the edit URL of a doc given its path relative to the docs root.
// A nil Builder yields "".
func (b *Builder) URL(docRel string) string {
	if b == nil {
		return ""
	}
	rel := strings.TrimPrefix(path.Clean("/"+docRel), "/")
	if b.docsDir != "" {
		rel = b.docsDir + "/" + rel
	}
	return b.base + "/" + rel
}
