package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/petal/cmd/petal/commands"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("petal"),
		kong.Description("A single-author static blog generator."),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	perrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
}
