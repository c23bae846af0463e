package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyFormat   = "format"
	KeyLocale   = "locale"
	KeyRoute    = "route"
	KeyLink     = "link"
	KeySource   = "source"
	KeyPolicy   = "policy"
	KeyCount    = "count"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func Locale(l string) slog.Attr        { return slog.String(KeyLocale, l) }
func Route(r string) slog.Attr         { return slog.String(KeyRoute, r) }
func Link(l string) slog.Attr          { return slog.String(KeyLink, l) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }
func Policy(p string) slog.Attr        { return slog.String(KeyPolicy, p) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDuration, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
