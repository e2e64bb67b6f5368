package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/petal/internal/config"
	"git.home.luguber.info/inful/petal/internal/post"
)

func testConfig() *config.Config {
	return &config.Config{
		Encoding:  "utf-8",
		Dirs:      config.DirsConfig{Blog: "blog", Templates: "templates", Output: "output", Content: "content"},
		Ext:       config.ExtConfig{Source: ".md", HTML: ".html"},
		IndexFile: "index.md",
	}
}

func newTestMaintainer(t *testing.T, root string) *Maintainer {
	t.Helper()
	m, err := New(testConfig(), root)
	require.NoError(t, err)
	return m
}

func readIndex(t *testing.T, m *Maintainer) string {
	t.Helper()
	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	return string(data)
}

func datedPost(slug, title, date string) *post.Post {
	return &post.Post{Slug: slug, Title: title, Date: date}
}

func TestRegenerate_SortsDateDescending(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())

	posts := []*post.Post{
		datedPost("blog/a", "A", "2024-01-01"),
		datedPost("blog/b", "B", "2024-06-01"),
	}
	require.NoError(t, m.Regenerate(posts))

	require.Equal(t,
		"title: Index\n\n[B](blog/b.html) (2024-06-01)\n\n[A](blog/a.html) (2024-01-01)\n\n",
		readIndex(t, m))
}

func TestRegenerate_AnyInputOrder_ByteIdenticalOutput(t *testing.T) {
	root := t.TempDir()
	m := newTestMaintainer(t, root)

	a := datedPost("blog/a", "A", "2024-01-01")
	b := datedPost("blog/b", "B", "2024-06-01")
	c := datedPost("blog/c", "C", "2023-11-30")

	require.NoError(t, m.Regenerate([]*post.Post{a, b, c}))
	first := readIndex(t, m)

	require.NoError(t, m.Regenerate([]*post.Post{c, b, a}))
	second := readIndex(t, m)

	require.Equal(t, first, second)
}

func TestRegenerate_ReplacesPriorState(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())

	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/old", "Old", "2020-01-01")}))
	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/new", "New", "2024-01-01")}))

	content := readIndex(t, m)
	require.NotContains(t, content, "Old")
	require.Contains(t, content, "New")
}

func TestRegenerate_UndatedPostsSortLast(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())

	posts := []*post.Post{
		datedPost("blog/undated", "Undated", post.NoDate),
		datedPost("blog/dated", "Dated", "2024-06-01"),
	}
	require.NoError(t, m.Regenerate(posts))

	require.Equal(t,
		"title: Index\n\n[Dated](blog/dated.html) (2024-06-01)\n\n[Undated](blog/undated.html) (no date)\n\n",
		readIndex(t, m))
}

func TestInsertOne_SplicesEntryAfterHeader(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())
	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/a", "A", "2024-01-01")}))

	require.NoError(t, m.InsertOne(datedPost("blog/b", "B", "2024-06-01")))

	require.Equal(t,
		"title: Index\n\n[B](blog/b.html) (2024-06-01)\n\n[A](blog/a.html) (2024-01-01)\n\n",
		readIndex(t, m))
}

func TestInsertOne_Idempotent(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())
	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/a", "A", "2024-01-01")}))

	b := datedPost("blog/b", "B", "2024-06-01")
	require.NoError(t, m.InsertOne(b))
	once := readIndex(t, m)

	require.NoError(t, m.InsertOne(b))
	require.Equal(t, once, readIndex(t, m))
}

func TestInsertOne_DoesNotResort(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())
	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/newest", "Newest", "2024-12-01")}))

	// Insert an older post; it still lands directly after the header.
	require.NoError(t, m.InsertOne(datedPost("blog/older", "Older", "2020-01-01")))

	content := readIndex(t, m)
	olderPos := len("title: Index\n\n")
	require.Equal(t, "[Older](blog/older.html) (2020-01-01)\n\n", content[olderPos:olderPos+len("[Older](blog/older.html) (2020-01-01)\n\n")])
	require.Contains(t, content, "[Newest](blog/newest.html) (2024-12-01)")
}

func TestInsertOne_SlugSubstringOfExistingText_FalsePositiveSkip(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())
	require.NoError(t, m.Regenerate([]*post.Post{datedPost("blog/go-generics", "Go Generics", "2024-03-01")}))

	// "blog/go" is a substring of "blog/go-generics.html", so the weak check
	// treats it as already present.
	require.NoError(t, m.InsertOne(datedPost("blog/go", "Go", "2024-04-01")))
	require.NotContains(t, readIndex(t, m), "[Go](blog/go.html)")
}

func TestInsertOne_UndatedPost_UsesMarker(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())
	require.NoError(t, m.Regenerate(nil))

	require.NoError(t, m.InsertOne(datedPost("blog/undated", "Undated", post.NoDate)))
	require.Contains(t, readIndex(t, m), "[Undated](blog/undated.html) (no date)")
}

func TestInsertOne_MissingIndexFile_ReturnsIndexError(t *testing.T) {
	m := newTestMaintainer(t, t.TempDir())

	err := m.InsertOne(datedPost("blog/a", "A", "2024-01-01"))
	require.Error(t, err)
}

func TestPath_JoinsRootAndIndexFile(t *testing.T) {
	root := t.TempDir()
	m := newTestMaintainer(t, root)
	require.Equal(t, filepath.Join(root, "index.md"), m.Path())
	require.Equal(t, "index.md", m.RelPath())
}
