package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const exampleConfig = `# petal site configuration
encoding: utf-8

dirs:
  blog: blog
  templates: templates
  output: output
  content: content

ext:
  source: .md
  html: .html

index_file: index.md

# Root-relative paths never processed as posts or meta pages.
ignored_files:
  - blog/drafts.md
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
