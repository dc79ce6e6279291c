package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBasePath = "base_path"
	KeyMode     = "mode"
	KeySource   = "source"
	KeyPath     = "path"
	KeyFile     = "file"
	KeyFormat   = "format"
	KeyRemote   = "remote"
	KeyURL      = "url"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BasePath(p string) slog.Attr { return slog.String(KeyBasePath, p) }
func Mode(m string) slog.Attr     { return slog.String(KeyMode, m) }
func Source(s string) slog.Attr   { return slog.String(KeySource, s) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Format(f string) slog.Attr   { return slog.String(KeyFormat, f) }
func Remote(r string) slog.Attr   { return slog.String(KeyRemote, r) }
func URL(u string) slog.Attr      { return slog.String(KeyURL, u) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
