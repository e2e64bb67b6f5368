// Package site orchestrates full and single-document builds: it discovers
// source documents, sequences loading and rendering, and drives the index
// maintenance mode matching the build shape (regenerate for full builds,
// single-entry insert for incremental ones).
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/petal/internal/config"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/index"
	"git.home.luguber.info/inful/petal/internal/logfields"
	"git.home.luguber.info/inful/petal/internal/post"
	"git.home.luguber.info/inful/petal/internal/render"
)

// Builder wires the loader, renderer and index maintainer together for one
// build invocation. The project root is resolved once and passed down; the
// process working directory is never changed.
type Builder struct {
	cfg      *config.Config
	root     string
	loader   *post.Loader
	renderer *render.Renderer
	index    *index.Maintainer
}

// NewBuilder creates a builder for the project at root.
func NewBuilder(cfg *config.Config, root string) (*Builder, error) {
	loader, err := post.NewLoader(cfg, root)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(cfg, root)
	if err != nil {
		return nil, err
	}
	maintainer, err := index.New(cfg, root)
	if err != nil {
		return nil, err
	}
	return &Builder{
		cfg:      cfg,
		root:     root,
		loader:   loader,
		renderer: renderer,
		index:    maintainer,
	}, nil
}

// EnsureDirectories verifies the templates directory exists and creates the
// output tree mirroring the blog directory.
func (b *Builder) EnsureDirectories() error {
	templatesDir := filepath.Join(b.root, b.cfg.Dirs.Templates)
	if _, err := os.Stat(templatesDir); os.IsNotExist(err) {
		return perrors.TemplatesDirMissing(filepath.ToSlash(templatesDir))
	}

	outputBlog := filepath.Join(b.root, b.cfg.Dirs.Output, b.cfg.Dirs.Blog)
	if err := os.MkdirAll(outputBlog, 0o755); err != nil {
		return perrors.WorkspaceError("create output directories", err)
	}
	return nil
}

// CopyContent copies the static content directory verbatim into the output
// tree. A missing content directory is not an error.
func (b *Builder) CopyContent() error {
	src := filepath.Join(b.root, b.cfg.Dirs.Content)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		slog.Debug("No content directory, skipping copy", logfields.Path(b.cfg.Dirs.Content))
		return nil
	}

	dst := filepath.Join(b.root, b.cfg.Dirs.Output, b.cfg.Dirs.Content)
	if err := copyDir(src, dst); err != nil {
		return perrors.WorkspaceError("copy content files", err)
	}
	slog.Debug("Copied content files", logfields.Path(b.cfg.Dirs.Content))
	return nil
}

// BuildAll renders every qualifying blog post, regenerates the index from
// the full collection, then renders top-level documents as meta pages.
// With zero qualifying posts nothing is rendered and the index is untouched.
func (b *Builder) BuildAll() error {
	blogPosts, err := b.loader.LoadAll(path.Join(b.cfg.Dirs.Blog, "*"+b.cfg.Ext.Source))
	if err != nil {
		return err
	}

	if len(blogPosts) == 0 {
		fmt.Println("No posts found, exiting")
		slog.Info("No posts found under blog directory", logfields.Path(b.cfg.Dirs.Blog))
		return nil
	}

	fmt.Println("Rendering all posts to HTML")
	for _, p := range blogPosts {
		fmt.Printf("Rendering %s%s\n", p.Slug, b.cfg.Ext.Source)
		if err := b.renderer.Render(p, render.KindBlog); err != nil {
			return err
		}
	}

	fmt.Println("Generating index file")
	if err := b.index.Regenerate(blogPosts); err != nil {
		return err
	}

	// Top-level documents (the freshly regenerated index among them) render
	// as meta pages and never join the index.
	metaPosts, err := b.loader.LoadAll("*" + b.cfg.Ext.Source)
	if err != nil {
		return err
	}
	for _, p := range metaPosts {
		fmt.Printf("Rendering %s%s\n", p.Slug, b.cfg.Ext.Source)
		if err := b.renderer.Render(p, render.KindMeta); err != nil {
			return err
		}
	}

	slog.Info("Full build complete",
		logfields.Count(len(blogPosts)),
		slog.Int("meta_pages", len(metaPosts)))
	return nil
}

// BuildOne renders a single named document. A name under the blog directory
// is rendered as a blog post, inserted into the index, and the index page is
// re-rendered; a top-level name is rendered as a meta page only. An
// ignore-list match under either resolution is skipped silently.
func (b *Builder) BuildOne(name string) error {
	metaRel := name
	blogRel := path.Join(b.cfg.Dirs.Blog, name)

	if b.cfg.Ignored(metaRel) || b.cfg.Ignored(blogRel) {
		fmt.Printf("%s is in the ignored files list, skipping\n", name)
		slog.Info("Requested document is ignored, skipping", logfields.File(name))
		return nil
	}

	switch {
	case b.exists(blogRel):
		fmt.Printf("Rendering %s to HTML\n", blogRel)
		p, err := b.loader.Load(blogRel)
		if err != nil {
			return err
		}
		if err := b.renderer.Render(p, render.KindBlog); err != nil {
			return err
		}

		fmt.Printf("Adding %s to index file\n", blogRel)
		if err := b.index.InsertOne(p); err != nil {
			return err
		}

		fmt.Printf("Rendering %s to HTML\n", b.index.RelPath())
		indexPost, err := b.loader.Load(b.index.RelPath())
		if err != nil {
			return err
		}
		return b.renderer.Render(indexPost, render.KindMeta)

	case b.exists(metaRel):
		fmt.Printf("Rendering %s to HTML\n", metaRel)
		p, err := b.loader.Load(metaRel)
		if err != nil {
			return err
		}
		return b.renderer.Render(p, render.KindMeta)

	default:
		return perrors.PostNotFound(name)
	}
}

func (b *Builder) exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(b.root, filepath.FromSlash(relPath)))
	return err == nil
}
