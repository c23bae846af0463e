// Package render encodes a site.SiteConfiguration in the formats the
// Docusaurus builder can import and writes it to disk atomically.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

var tsTemplate = template.Must(template.New("docusaurus.config.ts").Parse(`// Code generated by siteconfig. DO NOT EDIT.
import { themes as prismThemes } from "prism-react-renderer";
import type { Config } from "@docusaurus/types";

const site: Config = {{ .JSON }};

const config: Config = {
  ...site,
  themeConfig: {
    ...site.themeConfig,
    prism: {
      theme: prismThemes.{{ .Theme }},
      darkTheme: prismThemes.{{ .DarkTheme }},
    },
  },
};

export default config;
`))

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *site.SiteConfiguration, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.RenderFailed(string(format), err)
		}
		if err := enc.Close(); err != nil {
			return errors.RenderFailed(string(format), err)
		}
		return nil
	case FormatTypeScript:
		return encodeTypeScript(w, cfg)
	default:
		return errors.RenderFailed(string(format), fmt.Errorf("unsupported format %q", format))
	}
}

// Bytes returns the encoded configuration.
func Bytes(cfg *site.SiteConfiguration, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(w io.Writer, cfg *site.SiteConfiguration) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return errors.RenderFailed(string(FormatJSON), err)
	}
	return nil
}

func encodeTypeScript(w io.Writer, cfg *site.SiteConfiguration) error {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, cfg); err != nil {
		return err
	}
	// Theme names are interpolated as identifiers, so only known ones pass.
	prism := cfg.ThemeConfig.Prism
	if !site.PrismThemes[prism.Theme] || !site.PrismThemes[prism.DarkTheme] {
		return errors.RenderFailed(string(FormatTypeScript),
			fmt.Errorf("unknown prism theme pair %q/%q", prism.Theme, prism.DarkTheme))
	}
	data := struct {
		JSON      string
		Theme     string
		DarkTheme string
	}{
		JSON:      string(bytes.TrimRight(buf.Bytes(), "\n")),
		Theme:     prism.Theme,
		DarkTheme: prism.DarkTheme,
	}
	if err := tsTemplate.Execute(w, data); err != nil {
		return errors.RenderFailed(string(FormatTypeScript), err)
	}
	return nil
}

// WriteFile encodes cfg and atomically replaces path with the result.
// It reports whether the file content changed.
func WriteFile(path string, cfg *site.SiteConfiguration, format Format) (bool, error) {
	data, err := Bytes(cfg, format)
	if err != nil {
		return false, err
	}
	if existing, readErr := os.ReadFile(filepath.Clean(path)); readErr == nil && bytes.Equal(existing, data) {
		slog.Debug("Site configuration unchanged", logfields.Path(path), logfields.Format(string(format)))
		return false, nil
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return false, errors.WriteFailed(path, err)
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			slog.Debug("cleanup pending output file", logfields.Error(cerr))
		}
	}()
	if _, err := pending.Write(data); err != nil {
		return false, errors.WriteFailed(path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return false, errors.WriteFailed(path, err)
	}
	slog.Info("Wrote site configuration", logfields.Path(path), logfields.Format(string(format)))
	return true, nil
}
