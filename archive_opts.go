package epub

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithMaxEntrySize limits the decompressed size of a single entry.
// Set limit to 0 to disable the limit.
func WithMaxEntrySize(limit uint64) Option {
	return func(a *Archive) {
		a.maxEntrySize = limit
	}
}

// WithLogger sets a custom logger for the archive. When unset, log output
// is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}
