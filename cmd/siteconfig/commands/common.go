package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/config"
)

// Global carries process-wide state into every command.
type Global struct {
	Logger   *slog.Logger
	Stdout   io.Writer
	Now      func() time.Time
	Settings *config.Settings
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Settings file path" default:"siteconfig.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Emit the Docusaurus site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate the site configuration without writing it"`
	Routes   RoutesCmd   `cmd:"" help:"List doc routes and their edit links"`
	Links    LinksCmd    `cmd:"" help:"Check doc links against the broken-link policies"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the configuration whenever sources change"`
	Init     InitCmd     `cmd:"" help:"Write a settings file populated with defaults"`
}

// AfterApply loads settings once and installs the process logger.
func (c *CLI) AfterApply(g *Global) error {
	settings, err := config.Load(c.Config, true)
	if err != nil {
		return err
	}
	g.Settings = settings
	g.Logger = config.NewLogger(os.Stderr, settings.Logging, c.Verbose)
	slog.SetDefault(g.Logger)
	return nil
}
