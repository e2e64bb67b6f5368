package markdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert_ColonBlock_SplitsMetadataAndBody(t *testing.T) {
	src := []byte("title: First Post\ndate: 2024-06-01\n\n# Hello\n\nSome *text*.\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)

	title, ok := result.Meta.First("title")
	require.True(t, ok)
	require.Equal(t, "First Post", title)

	date, ok := result.Meta.First("date")
	require.True(t, ok)
	require.Equal(t, "2024-06-01", date)

	require.Contains(t, result.Fragment, "<h1 id=\"hello\">Hello</h1>")
	require.Contains(t, result.Fragment, "<em>text</em>")
	require.NotContains(t, result.Fragment, "First Post")
}

func TestConvert_MetadataKeys_CaseInsensitive(t *testing.T) {
	src := []byte("Title: Mixed Case\nDATE: 2024-01-01\n\nbody\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)

	title, ok := result.Meta.First("title")
	require.True(t, ok)
	require.Equal(t, "Mixed Case", title)

	_, ok = result.Meta.First("date")
	require.True(t, ok)
}

func TestConvert_ContinuationLines_AppendValues(t *testing.T) {
	src := []byte("title: Post\ntags: go\n    blogging\n    static-sites\n\nbody\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)
	require.Equal(t, []string{"go", "blogging", "static-sites"}, result.Meta["tags"])
}

func TestConvert_NoMetadata_WholeInputIsBody(t *testing.T) {
	src := []byte("# Just a heading\n\nNo metadata here.\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)
	require.Empty(t, result.Meta)
	require.Contains(t, result.Fragment, "<h1 id=\"just-a-heading\">Just a heading</h1>")
}

func TestConvert_FencedCode_RendersCodeBlock(t *testing.T) {
	src := []byte("title: Code\n\n```go\nfmt.Println(\"hi\")\n```\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)
	require.Contains(t, result.Fragment, "<pre>")
	require.Contains(t, result.Fragment, "language-go")
}

func TestConvert_YAMLFrontmatter_ParsesMetadata(t *testing.T) {
	src := []byte("---\ntitle: Front Post\ndate: 2024-03-05\ntags:\n  - go\n  - web\n---\n# Body\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)

	title, ok := result.Meta.First("title")
	require.True(t, ok)
	require.Equal(t, "Front Post", title)

	date, ok := result.Meta.First("date")
	require.True(t, ok)
	require.Equal(t, "2024-03-05", date)
	require.Equal(t, []string{"go", "web"}, result.Meta["tags"])
	require.Contains(t, result.Fragment, "<h1 id=\"body\">Body</h1>")
}

func TestConvert_UnterminatedFrontmatter_ReturnsError(t *testing.T) {
	src := []byte("---\ntitle: Broken\n# No closing delimiter\n")

	_, err := NewConverter().Convert(src)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestConvert_IndexHeader_ParsesAsDocument(t *testing.T) {
	src := []byte("title: Index\n\n[First Post](blog/first.html) (2024-06-01)\n")

	result, err := NewConverter().Convert(src)
	require.NoError(t, err)

	title, ok := result.Meta.First("title")
	require.True(t, ok)
	require.Equal(t, "Index", title)
	require.Contains(t, result.Fragment, `<a href="blog/first.html">First Post</a>`)
}

func TestFirst_EmptyValueList_ReportsMissing(t *testing.T) {
	meta := Metadata{"title": nil}
	_, ok := meta.First("title")
	require.False(t, ok)
}
