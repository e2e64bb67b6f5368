package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/petal/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults to ~/.config/petal/config.yaml)"`
	Root    string           `short:"r" help:"Project root directory" default:"."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	All    AllCmd    `cmd:"" help:"Render every blog post, regenerate the index, and render meta pages"`
	Single SingleCmd `cmd:"" help:"Render one named document and update the index incrementally"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigPath resolves the configuration file location: explicit flag first,
// per-user default otherwise.
func (c *CLI) ConfigPath() (string, error) {
	if c.Config != "" {
		return c.Config, nil
	}
	return config.DefaultPath()
}

// LoadConfig loads and validates the configuration for a command run.
func (c *CLI) LoadConfig() (*config.Config, error) {
	path, err := c.ConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
