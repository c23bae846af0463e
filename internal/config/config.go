package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/render"
)

// DefaultPath is the settings file looked up when --config is not given.
const DefaultPath = "siteconfig.yaml"

// Settings configures the siteconfig tool itself. The site configuration it
// emits is fixed in internal/site; these settings only say where sources
// live and where output goes.
type Settings struct {
	Output  OutputConfig  `yaml:"output"`
	Site    SiteLayout    `yaml:"site"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

// OutputConfig selects the emitted file.
type OutputConfig struct {
	Path      string        `yaml:"path,omitempty"`
	RawFormat string        `yaml:"format,omitempty"`
	Format    render.Format `yaml:"-"`
}

// SiteLayout locates the Docusaurus source tree.
type SiteLayout struct {
	Root       string `yaml:"root,omitempty"`
	DocsDir    string `yaml:"docs_dir,omitempty"`   // relative to Root
	StaticDir  string `yaml:"static_dir,omitempty"` // relative to Root
	CheckFiles bool   `yaml:"check_files"`
}

// DocsPath is the docs directory joined onto the site root.
func (s SiteLayout) DocsPath() string { return filepath.Join(s.Root, s.DocsDir) }

// StaticPath is the static directory joined onto the site root.
func (s SiteLayout) StaticPath() string { return filepath.Join(s.Root, s.StaticDir) }

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// Load reads settings from path. A missing file is not an error when
// optional is true; defaults are returned instead. `.env` and `.env.local`
// are loaded first and ${VAR} references in the file are expanded.
// Relative site.root and output.path in the file resolve against the
// directory holding it; without a file they stay relative to the working
// directory.
func Load(path string, optional bool) (*Settings, error) {
	loadEnvFiles()

	// #nosec G304 - settings path is chosen by the operator
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if optional {
			slog.Debug("Settings file not found, using defaults", logfields.Path(path))
			return Default(), nil
		}
		return nil, errors.ConfigNotFound(path)
	}
	if err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}

	var s Settings
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &s); err != nil {
		return nil, errors.ConfigInvalid(path, fmt.Errorf("failed to unmarshal settings: %w", err))
	}
	s.resolveRelativeTo(filepath.Dir(path))
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// loadEnvFiles loads the first of .env and .env.local that exists. Variables
// already present in the process environment are kept.
func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(name), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(name))
		return
	}
}

// resolveRelativeTo anchors the file's relative locations at dir.
func (s *Settings) resolveRelativeTo(dir string) {
	switch {
	case s.Site.Root == "":
		s.Site.Root = dir
	case !filepath.IsAbs(s.Site.Root):
		s.Site.Root = filepath.Join(dir, s.Site.Root)
	}
	if s.Output.Path != "" && !filepath.IsAbs(s.Output.Path) {
		s.Output.Path = filepath.Join(dir, s.Output.Path)
	}
}

func (s *Settings) applyDefaults() {
	if s.Output.RawFormat == "" && s.Output.Path != "" {
		s.Output.Format = render.FormatForPath(s.Output.Path, render.FormatJSON)
		s.Output.RawFormat = string(s.Output.Format)
	}
	if s.Output.RawFormat == "" {
		s.Output.RawFormat = string(render.FormatJSON)
	}
	if f, err := render.ParseFormat(s.Output.RawFormat); err == nil {
		s.Output.Format = f
	}
	if s.Site.Root == "" {
		s.Site.Root = "."
	}
	if s.Output.Path == "" && s.Output.Format != "" {
		s.Output.Path = filepath.Join(s.Site.Root, s.Output.Format.DefaultFileName())
	}
	if s.Site.DocsDir == "" {
		s.Site.DocsDir = "docs"
	}
	if s.Site.StaticDir == "" {
		s.Site.StaticDir = "static"
	}
	s.Logging.Level = NormalizeLogLevel(string(s.Logging.Level))
	s.Logging.Format = NormalizeLogFormat(string(s.Logging.Format))
	if s.Watch.Debounce <= 0 {
		s.Watch.Debounce = 500 * time.Millisecond
	}
}

// Validate checks values defaults cannot repair.
func (s *Settings) Validate() error {
	if _, err := render.ParseFormat(s.Output.RawFormat); err != nil {
		return errors.ValidationFailed("output.format", err.Error())
	}
	if filepath.IsAbs(s.Site.DocsDir) {
		return errors.ValidationFailed("site.docs_dir", "must be relative to site.root")
	}
	if filepath.IsAbs(s.Site.StaticDir) {
		return errors.ValidationFailed("site.static_dir", "must be relative to site.root")
	}
	return nil
}

// Init writes a settings file populated with defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.CategoryConfig, errors.SeverityError,
			"configuration file already exists (use --force to overwrite)").WithContext("path", path)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.InternalError("failed to marshal default settings", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.WriteFailed(path, err)
	}
	slog.Info("Created settings file", logfields.Path(path))
	return nil
}
