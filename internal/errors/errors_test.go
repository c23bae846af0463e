package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SiteError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSiteError_WithContext(t *testing.T) {
	err := MissingReferences([]string{"static/img/logo.png"}).WithContext("root", "/site")
	require.NotNil(t, err.Context)
	assert.Equal(t, []string{"static/img/logo.png"}, err.Context["paths"])
	assert.Equal(t, "/site", err.Context["root"])
}

func TestCategoryThroughWrapping(t *testing.T) {
	inner := BrokenLinks(3)
	wrapped := fmt.Errorf("links command: %w", inner)

	assert.True(t, IsCategory(wrapped, CategoryLinks))
	assert.False(t, IsCategory(wrapped, CategoryConfig))
	assert.Equal(t, CategoryLinks, GetCategory(wrapped))
	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", fmt.Errorf("boom"), 1},
		{"validation", InvalidSite([]string{"x"}), 2},
		{"config", ConfigNotFound("siteconfig.yaml"), 7},
		{"links", BrokenLinks(1), 9},
		{"internal", InternalError("oops", nil), 10},
		{"render", RenderFailed("json", fmt.Errorf("x")), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var logs, out bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	a.out = &out

	code := a.Report(ValidationFailed("i18n.defaultLocale", "not in locales"))
	assert.Equal(t, 2, code)
	assert.Equal(t, "validation failed\n", out.String())
	assert.Contains(t, logs.String(), "category=validation")
	assert.Contains(t, logs.String(), "field=i18n.defaultLocale")
}

func TestCLIErrorAdapter_VerboseFormatting(t *testing.T) {
	a := NewCLIErrorAdapter(true, nil)
	err := WriteFailed("out.json", fmt.Errorf("disk full"))
	assert.Equal(t, "filesystem (fatal): failed to write output: disk full", a.FormatError(err))

	quiet := NewCLIErrorAdapter(false, nil)
	assert.Equal(t, "filesystem: failed to write output", quiet.FormatError(err))
}
