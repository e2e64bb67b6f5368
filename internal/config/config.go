// Package config holds the site configuration. It is loaded exactly once at
// process start and passed by value into each component constructor; there is
// no ambient global configuration state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/textenc"
)

// Config represents the site configuration
type Config struct {
	Encoding     string     `yaml:"encoding"`
	Dirs         DirsConfig `yaml:"dirs"`
	Ext          ExtConfig  `yaml:"ext"`
	IndexFile    string     `yaml:"index_file"`
	IgnoredFiles []string   `yaml:"ignored_files,omitempty"`
}

// DirsConfig names the directories under the project root
type DirsConfig struct {
	Blog      string `yaml:"blog"`
	Templates string `yaml:"templates"`
	Output    string `yaml:"output"`
	Content   string `yaml:"content"`
}

// ExtConfig holds the file extensions for source documents and rendered pages
type ExtConfig struct {
	Source string `yaml:"source"`
	HTML   string `yaml:"html"`
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "petal", "config.yaml"), nil
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists so ${VAR} references in the config resolve.
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, perrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in zero-valued fields after unmarshalling.
func (c *Config) applyDefaults() {
	if c.Encoding == "" {
		c.Encoding = "utf-8"
	}
	if c.Dirs.Blog == "" {
		c.Dirs.Blog = "blog"
	}
	if c.Dirs.Templates == "" {
		c.Dirs.Templates = "templates"
	}
	if c.Dirs.Output == "" {
		c.Dirs.Output = "output"
	}
	if c.Dirs.Content == "" {
		c.Dirs.Content = "content"
	}
	if c.Ext.Source == "" {
		c.Ext.Source = ".md"
	}
	if c.Ext.HTML == "" {
		c.Ext.HTML = ".html"
	}
	if c.IndexFile == "" {
		c.IndexFile = "index" + c.Ext.Source
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if _, err := textenc.Resolve(c.Encoding); err != nil {
		return perrors.ConfigInvalid("encoding", err.Error())
	}
	if c.Ext.Source == "" || c.Ext.Source[0] != '.' {
		return perrors.ConfigInvalid("ext.source", "must be a non-empty extension starting with '.'")
	}
	if c.Ext.HTML == "" || c.Ext.HTML[0] != '.' {
		return perrors.ConfigInvalid("ext.html", "must be a non-empty extension starting with '.'")
	}
	return nil
}

// Ignored reports whether a root-relative path exactly matches an
// ignore-list entry.
func (c *Config) Ignored(relPath string) bool {
	for _, ignored := range c.IgnoredFiles {
		if relPath == ignored {
			return true
		}
	}
	return false
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
