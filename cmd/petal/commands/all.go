package commands

import (
	"fmt"

	"git.home.luguber.info/inful/petal/internal/config"
	"git.home.luguber.info/inful/petal/internal/site"
)

// AllCmd implements the 'all' command: a full build of every discoverable
// source document.
type AllCmd struct{}

func (a *AllCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return RunAll(cfg, root.Root)
}

func RunAll(cfg *config.Config, rootDir string) error {
	fmt.Println("Starting full site build")

	builder, err := site.NewBuilder(cfg, rootDir)
	if err != nil {
		return err
	}

	if err := builder.EnsureDirectories(); err != nil {
		return err
	}
	if err := builder.CopyContent(); err != nil {
		return err
	}
	return builder.BuildAll()
}
