package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyTransform  = "transform"
	KeyFile       = "file"
	KeySlug       = "slug"
	KeyDir        = "dir"
	KeyDryRun     = "dry_run"
	KeyChanged    = "changed"
	KeyDurationMS = "duration_ms"
	KeySelector   = "selector"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Transform(name string) slog.Attr { return slog.String(KeyTransform, name) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Dir(path string) slog.Attr       { return slog.String(KeyDir, path) }
func DryRun(b bool) slog.Attr         { return slog.Bool(KeyDryRun, b) }
func Changed(b bool) slog.Attr        { return slog.Bool(KeyChanged, b) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Selector(name string) slog.Attr  { return slog.String(KeySelector, name) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
