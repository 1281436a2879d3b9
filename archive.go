package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/klauspost/compress/flate"
)

// ContainerFile is the well-known location of the container descriptor.
const ContainerFile = "META-INF/container.xml"

// DefaultMaxEntrySize caps the decompressed size of a single entry to guard
// against zip bombs. Override with WithMaxEntrySize.
const DefaultMaxEntrySize uint64 = 256 << 20

// Archive provides access to the named entries of one EPUB container.
//
// An Archive never mutates its backing source; rewrites stream a fresh
// container to a separate destination. Archive methods are not safe for
// concurrent use; callers sharing an Archive across goroutines must
// serialize access externally.
type Archive struct {
	zr           *zip.Reader
	names        []string
	byName       map[string]*zip.File
	path         string
	closer       io.Closer // non-nil when opened from disk
	maxEntrySize uint64
	logger       *slog.Logger
}

// Interface compliance.
var _ fs.FS = (*Archive)(nil)

// Open opens the EPUB container at path.
//
// The returned error wraps fs.ErrNotExist when the file is missing and
// ErrCorruptContainer when the container index cannot be parsed. The caller
// must Close the Archive to release the file handle.
func Open(path string, opts ...Option) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat container: %w", err)
	}
	a, err := OpenReader(f, info.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.path = path
	a.closer = f
	return a, nil
}

// OpenReader opens an EPUB container from any random-access byte source,
// such as a *bytes.Reader over an in-memory image. Path reports "" for
// archives opened this way.
func OpenReader(r io.ReaderAt, size int64, opts ...Option) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	a := &Archive{
		zr:           zr,
		names:        make([]string, 0, len(zr.File)),
		byName:       make(map[string]*zip.File, len(zr.File)),
		maxEntrySize: DefaultMaxEntrySize,
	}
	for _, f := range zr.File {
		a.names = append(a.names, f.Name)
		a.byName[f.Name] = f
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// EntryNames returns the entry names in the container's physical index
// order. The returned slice is a copy and safe to retain.
func (a *Archive) EntryNames() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Len returns the number of entries in the container.
func (a *Archive) Len() int { return len(a.names) }

// Path returns the location the Archive was opened from, or "" when it was
// opened from an in-memory source.
func (a *Archive) Path() string { return a.path }

// Close releases the underlying file handle. Close is a no-op for archives
// opened with OpenReader.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}
