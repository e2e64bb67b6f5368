// Package post loads source documents into Post records: metadata is
// extracted from the leading block, the body is converted to an HTML
// fragment, and the slug is derived from the source path.
package post

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding"

	"git.home.luguber.info/inful/petal/internal/config"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/logfields"
	"git.home.luguber.info/inful/petal/internal/markdown"
	"git.home.luguber.info/inful/petal/internal/textenc"
)

// NoDate marks a post whose metadata block carries no date key.
// It sorts after every ISO-8601 date and renders literally in index entries.
const NoDate = "no date"

// Post represents one source document after loading.
//
// Slug is the root-relative source path with the source extension removed
// (e.g. "blog/first-post"); it builds the output path and the index link, so
// a post under the blog directory keeps its directory prefix.
type Post struct {
	Slug         string
	Body         string
	Title        string
	Date         string
	RenderedPage string
}

// Undated reports whether the post carries no date metadata.
func (p *Post) Undated() bool {
	return p.Date == NoDate
}

// Loader reads source documents relative to the project root.
type Loader struct {
	cfg  *config.Config
	root string
	conv *markdown.Converter
	enc  encoding.Encoding
}

// NewLoader creates a loader rooted at the resolved project root.
func NewLoader(cfg *config.Config, root string) (*Loader, error) {
	enc, err := textenc.Resolve(cfg.Encoding)
	if err != nil {
		return nil, perrors.ConfigInvalid("encoding", err.Error())
	}
	return &Loader{
		cfg:  cfg,
		root: root,
		conv: markdown.NewConverter(),
		enc:  enc,
	}, nil
}

// Load reads one source document. relPath is slash-separated and relative to
// the project root, and must end in the configured source extension.
func (l *Loader) Load(relPath string) (*Post, error) {
	if !strings.HasSuffix(relPath, l.cfg.Ext.Source) {
		return nil, perrors.SourceNotFound(relPath).
			WithContext("reason", "missing source extension "+l.cfg.Ext.Source)
	}

	fullPath := filepath.Join(l.root, filepath.FromSlash(relPath))
	data, err := textenc.ReadFile(fullPath, l.enc)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.SourceNotFound(relPath)
		}
		return nil, perrors.SourceUnreadable(relPath, err)
	}

	result, err := l.conv.Convert(data)
	if err != nil {
		return nil, perrors.ConversionFailed(relPath, err)
	}

	title, ok := result.Meta.First("title")
	if !ok {
		return nil, perrors.MissingMetadata(relPath, "title")
	}

	date, ok := result.Meta.First("date")
	if !ok {
		date = NoDate
	}

	return &Post{
		Slug:  strings.TrimSuffix(relPath, l.cfg.Ext.Source),
		Body:  result.Fragment,
		Title: title,
		Date:  date,
	}, nil
}

// LoadAll loads every source document matching pattern (root-relative glob),
// excluding exact ignore-list matches. Results are ordered by slug so a
// build processes documents deterministically.
func (l *Loader) LoadAll(pattern string) ([]*Post, error) {
	matches, err := filepath.Glob(filepath.Join(l.root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, perrors.WorkspaceError("glob "+pattern, err)
	}
	sort.Strings(matches)

	posts := make([]*Post, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(l.root, match)
		if err != nil {
			return nil, perrors.WorkspaceError("resolve "+match, err)
		}
		relPath := filepath.ToSlash(rel)

		if l.cfg.Ignored(relPath) {
			slog.Info("Skipping ignored file", logfields.File(relPath))
			continue
		}

		p, err := l.Load(relPath)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, nil
}
