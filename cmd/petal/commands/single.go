package commands

import (
	"fmt"

	"git.home.luguber.info/inful/petal/internal/config"
	"git.home.luguber.info/inful/petal/internal/site"
)

// SingleCmd implements the 'single' command: an incremental build of one
// named document.
type SingleCmd struct {
	File string `arg:"" help:"Source document filename (e.g. my-post.md)"`
}

func (s *SingleCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	return RunSingle(cfg, root.Root, s.File)
}

func RunSingle(cfg *config.Config, rootDir, name string) error {
	fmt.Printf("Starting single-document build for %s\n", name)

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
	return builder.BuildOne(name)
}
