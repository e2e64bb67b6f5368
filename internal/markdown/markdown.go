// Package markdown converts a source document into an HTML fragment plus its
// leading metadata block. Two metadata styles are recognized: a bare
// colon-style block (`Key: value` lines terminated by a blank line) and a
// `---`-delimited YAML frontmatter block. Keys are case-insensitive and each
// maps to an ordered list of values.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Metadata maps a lowercased metadata key to its ordered values.
type Metadata map[string][]string

// First returns the first value recorded under key, if any. Lookup is
// case-insensitive because keys are lowercased at parse time.
func (m Metadata) First(key string) (string, bool) {
	values := m[key]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Result is the outcome of converting one source document.
type Result struct {
	Fragment string
	Meta     Metadata
}

// Converter turns raw document text into an HTML fragment.
// It is stateless and safe to share across documents.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a converter with GFM extensions (tables, fenced code,
// strikethrough, autolinks) and raw HTML passthrough.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert splits the metadata block off src and renders the remaining body
// to an HTML fragment.
func (c *Converter) Convert(src []byte) (Result, error) {
	meta, body, err := splitMetadata(src)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return Result{}, fmt.Errorf("markdown convert: %w", err)
	}

	return Result{Fragment: buf.String(), Meta: meta}, nil
}
