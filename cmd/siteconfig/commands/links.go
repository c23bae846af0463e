package commands

import (
	"context"
	"fmt"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/docs"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/linkcheck"
)

// LinksCmd implements the 'links' command.
type LinksCmd struct{}

func (c *LinksCmd) Run(g *Global, _ *CLI) error {
	cfg, err := assemble(g, false)
	if err != nil {
		return err
	}
	list, err := docs.Discover(g.Settings.Site.DocsPath(), cfg)
	if err != nil {
		return err
	}
	checker := linkcheck.NewChecker(cfg, list, g.Settings.Site.StaticPath())
	report, err := checker.Check(context.Background())
	if err != nil {
		return err
	}
	for _, f := range report.Findings {
		fmt.Fprintf(g.Stdout, "%s\t%s\t%s -> %s (%s)\n", f.Policy, f.Source, f.Link, f.Target, f.Reason)
	}
	fmt.Fprintf(g.Stdout, "Checked %d links in %d docs, %d broken\n", report.Checked, len(list), len(report.Findings))
	return report.Err()
}
