package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// ReplaceEntry writes a new container image to dst in which the named
// entry's content is replaced and every other entry is transferred raw, at
// the compressed-byte level, in the original index order.
//
// The target must match a stored entry name exactly; unlike Entry, no
// percent-decode fallback is applied, so callers holding a logical name
// should resolve it first (see Info). ReplaceEntry returns ErrEntryNotFound
// before any byte reaches dst when the target is absent.
//
// The replaced entry is encoded fresh with default deflate settings, which
// need not match its original compression method. ReplaceEntry gives no
// atomicity guarantee: a fault partway through leaves dst incomplete. Use
// ReplaceEntryFile for an atomic on-disk rewrite.
func (a *Archive) ReplaceEntry(dst io.Writer, name string, content []byte) error {
	if _, ok := a.byName[name]; !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	zw := zip.NewWriter(dst)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	for _, f := range a.zr.File {
		if f.Name == name {
			w, err := zw.CreateHeader(&zip.FileHeader{
				Name:     f.Name,
				Method:   zip.Deflate,
				Modified: f.Modified,
			})
			if err != nil {
				return fmt.Errorf("encode entry %s: %w", f.Name, err)
			}
			if _, err := w.Write(content); err != nil {
				return fmt.Errorf("encode entry %s: %w", f.Name, err)
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			return fmt.Errorf("copy entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish container: %w", err)
	}
	a.log().Debug("entry replaced", "name", name, "size", len(content))
	return nil
}

// ReplaceEntryFile is ReplaceEntry with an atomic file destination: the new
// container is written to a temp file in path's directory and renamed over
// path only on success. On failure the temp file is removed and any
// existing file at path is left untouched.
func (a *Archive) ReplaceEntryFile(path, name string, content []byte) error {
	if _, ok := a.byName[name]; !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".epub-*")
	if err != nil {
		return fmt.Errorf("create temp container: %w", err)
	}
	tmpPath := tmp.Name()

	if err := a.ReplaceEntry(tmp, name, content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp container: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("promote temp container: %w", err)
	}
	return nil
}
