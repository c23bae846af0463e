package commands

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/config"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/refcheck"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/render"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/site"
)

// assemble builds and validates the site configuration, optionally checking
// that referenced files exist.
func assemble(g *Global, checkFiles bool) (*site.SiteConfiguration, error) {
	cfg := site.Assemble(g.Now())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if checkFiles {
		layout := refcheck.Layout{Root: g.Settings.Site.Root, StaticDir: g.Settings.Site.StaticDir}
		if _, err := refcheck.Check(layout, cfg); err != nil {
			return nil, err
		}
	}
	slog.Debug("Assembled site configuration",
		logfields.Locale(cfg.I18n.DefaultLocale), slog.Int("year", cfg.Year))
	return cfg, nil
}

// emit assembles the configuration and writes it to path in format.
func emit(_ context.Context, g *Global, path string, format render.Format, checkFiles bool) error {
	start := time.Now()
	cfg, err := assemble(g, checkFiles)
	if err != nil {
		return err
	}
	if _, err := render.WriteFile(path, cfg, format); err != nil {
		return err
	}
	slog.Debug("Generation finished", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

// outputTarget resolves the output path and format from flags and settings.
// An explicit format flag wins, then the output path extension, then settings.
func outputTarget(s *config.Settings, flagPath, flagFormat string) (string, render.Format, error) {
	format := s.Output.Format
	path := s.Output.Path
	if flagPath != "" {
		path = flagPath
		format = render.FormatForPath(flagPath, format)
	}
	if flagFormat != "" {
		f, err := render.ParseFormat(flagFormat)
		if err != nil {
			return "", "", err
		}
		format = f
		if flagPath == "" {
			path = filepath.Join(filepath.Dir(s.Output.Path), f.DefaultFileName())
		}
	}
	return path, format, nil
}
