package logger

import "log/slog"

// NewNope returns a logger that drops every record. Packages use it as the
// default so a nil check is never needed before logging.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
