package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/config"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/logfields"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Format string `short:"f" help:"Output format (json, yaml, ts)"`
	Output string `short:"o" help:"Output file (defaults to settings output.path)"`
}

func (c *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, g, root)
}

func (c *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	generate := func(ctx context.Context, settings *config.Settings) error {
		path, format, err := outputTarget(settings, c.Output, c.Format)
		if err != nil {
			return errors.ValidationFailed("format", err.Error())
		}
		return emit(ctx, g, path, format, settings.Site.CheckFiles)
	}
	if err := generate(ctx, g.Settings); err != nil {
		return err
	}

	// The watched set is fixed at startup; a reload picks up new output and
	// check settings but not new source directories.
	regenerate := func(ctx context.Context) error {
		settings, err := config.Load(root.Config, true)
		if err != nil {
			return err
		}
		g.Settings = settings
		return generate(ctx, settings)
	}

	sources := []string{
		root.Config,
		g.Settings.Site.DocsPath(),
		g.Settings.Site.StaticPath(),
		filepath.Join(g.Settings.Site.Root, "sidebars.ts"),
	}
	w, err := watch.New(g.Settings.Watch.Debounce, regenerate, sources...)
	if err != nil {
		return errors.Wrap(err, errors.CategoryRuntime, errors.SeverityFatal, "failed to start watcher")
	}
	slog.Info("Watching for changes", logfields.Path(g.Settings.Site.Root), slog.String("config", root.Config))
	return w.Run(ctx)
}
