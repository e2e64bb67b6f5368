package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/petal/internal/config"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
)

func setupProject(t *testing.T) (string, *config.Config) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"templates", "blog", "content"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	writeFile(t, root, "templates/blog.html", "<article>{{.title}} {{.date}} {{.content}}</article>")
	writeFile(t, root, "templates/meta.html", "<main>{{.title}} {{.content}}</main>")
	writeFile(t, root, "content/style.css", "body{}")

	cfgPath := filepath.Join(root, "petal.yaml")
	require.NoError(t, config.Init(cfgPath, false))
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	return root, cfg
}

func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestRunAll_EndToEnd_BuildsSiteAndCopiesContent(t *testing.T) {
	root, cfg := setupProject(t)
	writeFile(t, root, "blog/hello.md", "title: Hello\ndate: 2024-05-01\n\nHello world.\n")

	require.NoError(t, RunAll(cfg, root))

	require.FileExists(t, filepath.Join(root, "output", "blog", "hello.html"))
	require.FileExists(t, filepath.Join(root, "output", "index.html"))
	require.FileExists(t, filepath.Join(root, "output", "content", "style.css"))
}

func TestRunSingle_MissingDocument_ReturnsPostNotFound(t *testing.T) {
	root, cfg := setupProject(t)

	err := RunSingle(cfg, root, "missing.md")
	require.Error(t, err)
	require.True(t, perrors.IsPostNotFound(err))
}

func TestRunSingle_BlogPost_UpdatesIndex(t *testing.T) {
	root, cfg := setupProject(t)
	writeFile(t, root, "index.md", "title: Index\n\n")
	writeFile(t, root, "blog/hello.md", "title: Hello\ndate: 2024-05-01\n\nHello world.\n")

	require.NoError(t, RunSingle(cfg, root, "hello.md"))

	data, err := os.ReadFile(filepath.Join(root, "index.md"))
	require.NoError(t, err)
	require.Contains(t, string(data), "[Hello](blog/hello.html) (2024-05-01)")
}

func TestRunInit_CreatesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, RunInit(path, false))

	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestConfigPath_FlagTakesPrecedence(t *testing.T) {
	cli := &CLI{Config: "explicit.yaml"}
	path, err := cli.ConfigPath()
	require.NoError(t, err)
	require.Equal(t, "explicit.yaml", path)
}
