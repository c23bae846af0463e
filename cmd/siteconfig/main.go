package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/cmd/siteconfig/commands"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/errors"
	"github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{Stdout: os.Stdout, Now: time.Now}

	ctx := kong.Parse(&cli,
		kong.Name("siteconfig"),
		kong.Description("Assemble, validate and emit the C Documentation Docusaurus configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	if err := ctx.Run(&cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
