package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/docs"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/editlink"
)

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct{}

func (c *RoutesCmd) Run(g *Global, _ *CLI) error {
	cfg, err := assemble(g, false)
	if err != nil {
		return err
	}
	list, err := docs.Discover(g.Settings.Site.DocsPath(), cfg)
	if err != nil {
		return err
	}
	edit := editlink.NewBuilder(cfg, g.Settings.Site.DocsDir)

	routes := cfg.Routes()
	for _, prefix := range routes.Prefixes() {
		fmt.Fprintf(g.Stdout, "section prefix %s\n", prefix)
	}
	tw := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tSOURCE\tEDIT URL")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Route, d.RelPath, edit.URL(d.RelPath))
	}
	return tw.Flush()
}
