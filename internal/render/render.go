// Package render expands a loaded post through a page template and writes
// the final page under the output directory.
package render

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/encoding"

	"git.home.luguber.info/inful/petal/internal/config"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/logfields"
	"git.home.luguber.info/inful/petal/internal/post"
	"git.home.luguber.info/inful/petal/internal/textenc"
)

// Kind selects which page layout wraps a post's content. Any identifier
// naming a template file under the templates directory is valid.
type Kind string

const (
	KindBlog Kind = "blog"
	KindMeta Kind = "meta"
)

// Renderer writes rendered pages for posts.
type Renderer struct {
	cfg  *config.Config
	root string
	enc  encoding.Encoding
}

// New creates a renderer rooted at the resolved project root.
func New(cfg *config.Config, root string) (*Renderer, error) {
	enc, err := textenc.Resolve(cfg.Encoding)
	if err != nil {
		return nil, perrors.ConfigInvalid("encoding", err.Error())
	}
	return &Renderer{cfg: cfg, root: root, enc: enc}, nil
}

// Render expands p through the template for kind and writes the page to
// <output>/<slug><html ext>, overwriting any existing file. Output
// directories are a precondition (see site.EnsureDirectories); Render does
// not create them.
func (r *Renderer) Render(p *post.Post, kind Kind) error {
	templatePath := filepath.Join(r.root, r.cfg.Dirs.Templates, string(kind)+r.cfg.Ext.HTML)
	if _, err := os.Stat(templatePath); os.IsNotExist(err) {
		return perrors.TemplateNotFound(string(kind), filepath.ToSlash(templatePath))
	}

	raw, err := textenc.ReadFile(templatePath, r.enc)
	if err != nil {
		return perrors.WorkspaceError("read template "+string(kind), err)
	}

	page, err := expand(string(raw), map[string]any{
		"content": p.Body,
		"title":   p.Title,
		"date":    p.Date,
	})
	if err != nil {
		return perrors.RenderFailed(p.Slug, err)
	}

	outputPath := filepath.Join(r.root, r.cfg.Dirs.Output, filepath.FromSlash(p.Slug)+r.cfg.Ext.HTML)
	if err := textenc.WriteFile(outputPath, []byte(page), r.enc); err != nil {
		return perrors.WorkspaceError("write "+filepath.ToSlash(outputPath), err)
	}

	p.RenderedPage = page
	slog.Debug("Rendered page",
		logfields.Slug(p.Slug),
		logfields.Kind(string(kind)),
		logfields.Path(filepath.ToSlash(outputPath)))
	return nil
}

// expand renders the template text with the provided data. The engine
// contract is pure substitution over the named values.
func expand(text string, data map[string]any) (string, error) {
	tpl, err := template.New("page").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
