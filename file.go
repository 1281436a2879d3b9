package epub

import (
	"bytes"
	"io/fs"
	"path"
	"time"
)

// Open implements fs.FS.
//
// Open resolves the named entry with the same strategies as Entry and
// returns an in-memory fs.File over its decompressed content. The container
// index stores files only, so directory opens are not supported.
func (a *Archive) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, ok := a.resolve(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrEntryNotFound}
	}
	content, err := a.readEntry(f)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return &entryFile{
		Reader: *bytes.NewReader(content),
		info: entryFileInfo{
			name: path.Base(f.Name),
			size: int64(len(content)),
			mod:  f.Modified,
		},
	}, nil
}

// entryFile is an in-memory fs.File over one entry's decompressed content.
type entryFile struct {
	bytes.Reader
	info entryFileInfo
}

func (f *entryFile) Stat() (fs.FileInfo, error) { return f.info, nil }

func (f *entryFile) Close() error { return nil }

type entryFileInfo struct {
	name string
	size int64
	mod  time.Time
}

func (fi entryFileInfo) Name() string       { return fi.name }
func (fi entryFileInfo) Size() int64        { return fi.size }
func (fi entryFileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi entryFileInfo) ModTime() time.Time { return fi.mod }
func (fi entryFileInfo) IsDir() bool        { return false }
func (fi entryFileInfo) Sys() any           { return nil }
