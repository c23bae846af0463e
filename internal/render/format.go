package render

import (
	"path/filepath"
	"strings"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/foundation/normalization"
)

// Format selects the encoding of the emitted configuration.
type Format string

const (
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatTypeScript Format = "ts"
)

var formatNormalizer = normalization.New("output format", map[string]Format{
	"json":       FormatJSON,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
	"ts":         FormatTypeScript,
	"typescript": FormatTypeScript,
}, FormatJSON)

// ParseFormat parses a format name. Empty input yields json.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.Parse(raw)
}

// FormatForPath infers the format from a file extension, falling back to fallback.
func FormatForPath(path string, fallback Format) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := formatNormalizer.Parse(ext); err == nil && ext != "" {
		return f
	}
	return fallback
}

// DefaultFileName is the file the builder looks for in each format.
func (f Format) DefaultFileName() string {
	switch f {
	case FormatYAML:
		return "docusaurus.config.yaml"
	case FormatTypeScript:
		return "docusaurus.config.ts"
	default:
		return "docusaurus.config.json"
	}
}
