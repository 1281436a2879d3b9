package epub

import "errors"

// Sentinel errors returned by Archive operations.
var (
	// ErrCorruptContainer is returned when the container's central directory
	// cannot be parsed.
	ErrCorruptContainer = errors.New("epub: corrupt container")

	// ErrEntryNotFound is returned when a name is absent from the container
	// index after all applicable resolution strategies.
	ErrEntryNotFound = errors.New("epub: entry not found")

	// ErrInvalidEncoding is returned when entry content is not valid UTF-8
	// and text decoding was requested.
	ErrInvalidEncoding = errors.New("epub: entry is not valid UTF-8")

	// ErrEntryTooLarge is returned when an entry's decompressed content
	// exceeds the configured size limit.
	ErrEntryTooLarge = errors.New("epub: entry too large")
)
