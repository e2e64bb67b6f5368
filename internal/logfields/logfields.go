package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyFile     = "file"
	KeySlug     = "slug"
	KeyKind     = "kind"
	KeyCount    = "count"
	KeyTitle    = "title"
	KeyDate     = "date"
	KeyEncoding = "encoding"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Slug(s string) slog.Attr     { return slog.String(KeySlug, s) }
func Kind(k string) slog.Attr     { return slog.String(KeyKind, k) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Title(t string) slog.Attr    { return slog.String(KeyTitle, t) }
func Date(d string) slog.Attr     { return slog.String(KeyDate, d) }
func Encoding(e string) slog.Attr { return slog.String(KeyEncoding, e) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
