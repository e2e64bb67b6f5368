// Package index maintains the persisted chronological index document.
//
// Two maintenance modes exist and they deliberately diverge: Regenerate
// rewrites the whole document sorted by date descending, while InsertOne
// splices a single entry directly after the header without re-sorting, so
// repeated incremental inserts accumulate in reverse-insertion order at the
// top. Callers choosing the incremental path accept that ordering gap.
//
// Duplicate detection on insert is a substring check of the slug against the
// whole document. It is cheap and intentionally permissive: a slug that is a
// substring of another slug or of a title produces a false positive, and
// re-inserting a post never updates its existing entry.
package index

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding"

	"git.home.luguber.info/inful/petal/internal/config"
	perrors "git.home.luguber.info/inful/petal/internal/errors"
	"git.home.luguber.info/inful/petal/internal/logfields"
	"git.home.luguber.info/inful/petal/internal/post"
	"git.home.luguber.info/inful/petal/internal/textenc"
)

// Header is the fixed literal opening every index document. It doubles as a
// metadata block, so the index document loads and renders like any post.
const Header = "title: Index\n\n"

// entryFormat is "[title](link) (date)" followed by a blank-line separator.
const entryFormat = "[%s](%s) (%s)\n\n"

// Maintainer owns reads and writes of the index document.
type Maintainer struct {
	cfg  *config.Config
	root string
	enc  encoding.Encoding
}

// New creates an index maintainer rooted at the resolved project root.
func New(cfg *config.Config, root string) (*Maintainer, error) {
	enc, err := textenc.Resolve(cfg.Encoding)
	if err != nil {
		return nil, perrors.ConfigInvalid("encoding", err.Error())
	}
	return &Maintainer{cfg: cfg, root: root, enc: enc}, nil
}

// Path returns the index document location on disk.
func (m *Maintainer) Path() string {
	return filepath.Join(m.root, filepath.FromSlash(m.cfg.IndexFile))
}

// RelPath returns the root-relative index document path, suitable for the
// loader.
func (m *Maintainer) RelPath() string {
	return m.cfg.IndexFile
}

// Regenerate replaces the index document with entries for exactly the given
// posts, sorted by date descending. Undated posts sort after all dated ones.
// Input order does not affect the output.
func (m *Maintainer) Regenerate(posts []*post.Post) error {
	sorted := make([]*post.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryLess(sorted[i], sorted[j])
	})

	var b strings.Builder
	b.WriteString(Header)
	for _, p := range sorted {
		b.WriteString(m.entry(p))
	}

	if err := textenc.WriteFile(m.Path(), []byte(b.String()), m.enc); err != nil {
		return perrors.IndexWriteFailed(m.cfg.IndexFile, err)
	}

	slog.Info("Regenerated index", logfields.Path(m.cfg.IndexFile), logfields.Count(len(sorted)))
	return nil
}

// InsertOne splices a single entry immediately after the header of the
// existing document, leaving every other byte unchanged. If the post's slug
// already appears anywhere in the document text the call is a no-op.
func (m *Maintainer) InsertOne(p *post.Post) error {
	data, err := textenc.ReadFile(m.Path(), m.enc)
	if err != nil {
		return perrors.IndexReadFailed(m.cfg.IndexFile, err)
	}

	text := string(data)
	if strings.Contains(text, p.Slug) {
		slog.Info("Post already present in index, skipping", logfields.Slug(p.Slug))
		return nil
	}

	updated := splice(text, m.entry(p), len(Header))
	if err := textenc.WriteFile(m.Path(), []byte(updated), m.enc); err != nil {
		return perrors.IndexWriteFailed(m.cfg.IndexFile, err)
	}

	slog.Info("Inserted post into index", logfields.Slug(p.Slug), logfields.Date(p.Date))
	return nil
}

// entry formats one index line-item for a post.
func (m *Maintainer) entry(p *post.Post) string {
	return fmt.Sprintf(entryFormat, p.Title, p.Slug+m.cfg.Ext.HTML, p.Date)
}

// entryLess orders posts date-descending with undated posts last. ISO-8601
// dates compare correctly as plain strings; no timezone normalization.
func entryLess(a, b *post.Post) bool {
	switch {
	case a.Undated():
		return false
	case b.Undated():
		return true
	default:
		return a.Date > b.Date
	}
}

// splice inserts text into s at the byte offset, clamped to len(s).
func splice(s, insert string, offset int) string {
	if offset > len(s) {
		offset = len(s)
	}
	return s[:offset] + insert + s[offset:]
}
