package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Entry returns the decompressed content of the named entry.
//
// The name is first looked up verbatim; if absent, its percent-decoded form
// is tried. Entry returns ErrEntryNotFound when neither form appears in the
// index, and ErrEntryTooLarge when the decompressed content exceeds the
// configured limit. Read faults on a resolved entry are returned as-is,
// never mapped to ErrEntryNotFound.
func (a *Archive) Entry(name string) ([]byte, error) {
	f, ok := a.resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return a.readEntry(f)
}

// EntryText returns the content of the named entry decoded as UTF-8.
// It returns ErrInvalidEncoding when the content is not valid UTF-8; no
// other charset is attempted.
func (a *Archive) EntryText(name string) (string, error) {
	content, err := a.Entry(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, name)
	}
	return string(content), nil
}

// Container returns the content of the container descriptor,
// "META-INF/container.xml".
func (a *Archive) Container() ([]byte, error) {
	return a.Entry(ContainerFile)
}

// EntryInfo is a read-only view of one index entry's stored metadata.
type EntryInfo struct {
	// Name is the entry's stored name, which may differ from the requested
	// name when fallback resolution applied.
	Name string

	// Method is the compression method identifier as stored in the index.
	Method uint16

	// CompressedSize is the stored (compressed) byte count.
	CompressedSize uint64

	// UncompressedSize is the declared decompressed byte count.
	UncompressedSize uint64

	// CRC32 is the stored checksum of the decompressed content.
	CRC32 uint32
}

// Info returns the stored metadata of the named entry, applying the same
// resolution strategies as Entry.
func (a *Archive) Info(name string) (EntryInfo, error) {
	f, ok := a.resolve(name)
	if !ok {
		return EntryInfo{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	return EntryInfo{
		Name:             f.Name,
		Method:           f.Method,
		CompressedSize:   f.CompressedSize64,
		UncompressedSize: f.UncompressedSize64,
		CRC32:            f.CRC32,
	}, nil
}

// readEntry fully reads one index entry. The size limit is enforced against
// the actual decompressed byte count, not just the declared size, which may
// be forged.
func (a *Archive) readEntry(f *zip.File) ([]byte, error) {
	if a.maxEntrySize > 0 && f.UncompressedSize64 > a.maxEntrySize {
		return nil, fmt.Errorf("%w: %s declares %d bytes", ErrEntryTooLarge, f.Name, f.UncompressedSize64)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if a.maxEntrySize > 0 {
		// Limits beyond int64 range would wrap negative and starve the reader.
		lim := min(a.maxEntrySize, math.MaxInt64-1)
		r = io.LimitReader(rc, int64(lim)+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
	}
	if a.maxEntrySize > 0 && uint64(len(content)) > a.maxEntrySize {
		return nil, fmt.Errorf("%w: %s", ErrEntryTooLarge, f.Name)
	}
	return content, nil
}
