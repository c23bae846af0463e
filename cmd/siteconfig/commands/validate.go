package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	CheckFiles bool `name:"check-files" help:"Also require referenced files to exist"`
}

func (c *ValidateCmd) Run(g *Global, _ *CLI) error {
	cfg, err := assemble(g, c.CheckFiles || g.Settings.Site.CheckFiles)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "Site configuration valid (%s, %d navbar items, %d footer groups, blog enabled: %t)\n",
		cfg.Title, len(cfg.ThemeConfig.Navbar.Items), len(cfg.ThemeConfig.Footer.Links), cfg.Classic().Blog.Enabled())
	return nil
}
