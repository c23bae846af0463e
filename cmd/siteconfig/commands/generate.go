package commands

import (
	"context"
	"fmt"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/render"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Format     string `short:"f" help:"Output format (json, yaml, ts)"`
	Output     string `short:"o" help:"Output file (defaults to settings output.path)"`
	Stdout     bool   `help:"Write to standard output instead of a file"`
	CheckFiles bool   `name:"check-files" help:"Fail when referenced files are missing"`
}

func (c *GenerateCmd) Run(g *Global, _ *CLI) error {
	path, format, err := outputTarget(g.Settings, c.Output, c.Format)
	if err != nil {
		return errors.ValidationFailed("format", err.Error())
	}
	checkFiles := c.CheckFiles || g.Settings.Site.CheckFiles

	if c.Stdout {
		cfg, err := assemble(g, checkFiles)
		if err != nil {
			return err
		}
		return render.Encode(g.Stdout, cfg, format)
	}
	if err := emit(context.Background(), g, path, format, checkFiles); err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "Wrote %s\n", path)
	return nil
}
