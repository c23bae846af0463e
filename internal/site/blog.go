package site

import (
	"bytes"
	"encoding/json"
)

// DefaultBlogRouteBasePath is where the builder serves blog posts when the
// blog is enabled without an explicit route.
const DefaultBlogRouteBasePath = "blog"

// BlogConfig is either BlogDisabled or BlogEnabled. The disabled variant has
// no fields, so blog options cannot accompany a disabled blog.
type BlogConfig interface {
	// Enabled reports whether the builder generates blog routes.
	Enabled() bool
	isBlogConfig()
}

// BlogDisabled turns the blog plugin off. It encodes as literal false.
type BlogDisabled struct{}

func (BlogDisabled) Enabled() bool { return false }
func (BlogDisabled) isBlogConfig() {}

func (BlogDisabled) MarshalJSON() ([]byte, error) { return []byte("false"), nil }

func (BlogDisabled) MarshalYAML() (any, error) { return false, nil }

// BlogEnabled configures the blog plugin.
type BlogEnabled struct {
	RouteBasePath          string       `json:"routeBasePath,omitempty" yaml:"routeBasePath,omitempty"`
	ShowReadingTime        bool         `json:"showReadingTime" yaml:"showReadingTime"`
	FeedOptions            *FeedOptions `json:"feedOptions,omitempty" yaml:"feedOptions,omitempty"`
	EditURL                string       `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
	OnInlineTags           LinkPolicy   `json:"onInlineTags,omitempty" yaml:"onInlineTags,omitempty"`
	OnInlineAuthors        LinkPolicy   `json:"onInlineAuthors,omitempty" yaml:"onInlineAuthors,omitempty"`
	OnUntruncatedBlogPosts LinkPolicy   `json:"onUntruncatedBlogPosts,omitempty" yaml:"onUntruncatedBlogPosts,omitempty"`
}

func (BlogEnabled) Enabled() bool { return true }
func (BlogEnabled) isBlogConfig() {}

// Route returns the blog route base path, applying the builder default.
func (b BlogEnabled) Route() string {
	if b.RouteBasePath == "" {
		return DefaultBlogRouteBasePath
	}
	return b.RouteBasePath
}

// FeedOptions configures RSS/Atom feed generation.
type FeedOptions struct {
	Type []string `json:"type" yaml:"type"`
	XSLT bool     `json:"xslt" yaml:"xslt"`
}

func decodeBlog(raw json.RawMessage) (BlogConfig, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		return BlogDisabled{}, nil
	}
	var enabled BlogEnabled
	if err := json.Unmarshal(trimmed, &enabled); err != nil {
		return nil, err
	}
	return enabled, nil
}
