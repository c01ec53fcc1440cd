package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyKind       = "kind"
	KeySlug       = "slug"
	KeyLaw        = "law"
	KeyCountry    = "country"
	KeyFile       = "file"
	KeyURL        = "url"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Kind(k string) slog.Attr         { return slog.String(KeyKind, k) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Law(l string) slog.Attr          { return slog.String(KeyLaw, l) }
func Country(c string) slog.Attr      { return slog.String(KeyCountry, c) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
