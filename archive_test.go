package epub

import (
	"archive/zip"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureEntry struct {
	name    string
	content string
	stored  bool
}

// basicEntries is a minimal but realistic EPUB layout: a stored mimetype
// followed by deflated resources.
var basicEntries = []fixtureEntry{
	{name: "mimetype", content: "application/epub+zip", stored: true},
	{name: "META-INF/container.xml", content: `<container version="1.0"/>`},
	{name: "OEBPS/ch1.xhtml", content: "<html>one</html>"},
	{name: "OEBPS/ch2.xhtml", content: "<html>two</html>"},
}

func buildContainer(t *testing.T, entries []fixtureEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		method := zip.Deflate
		if e.stored {
			method = zip.Store
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: method})
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func openFixture(t *testing.T, entries []fixtureEntry, opts ...Option) *Archive {
	t.Helper()
	img := buildContainer(t, entries)
	a, err := OpenReader(bytes.NewReader(img), int64(len(img)), opts...)
	require.NoError(t, err)
	return a
}

func names(entries []fixtureEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

func TestOpenReader(t *testing.T) {
	a := openFixture(t, basicEntries)

	assert.Equal(t, names(basicEntries), a.EntryNames())
	assert.Equal(t, len(basicEntries), a.Len())
	assert.Empty(t, a.Path())
	assert.NoError(t, a.Close()) // no-op for in-memory sources
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.epub")
	require.NoError(t, os.WriteFile(path, buildContainer(t, basicEntries), 0o600))

	a, err := Open(path, WithLogger(slogt.New(t)))
	require.NoError(t, err)

	assert.Equal(t, path, a.Path())
	assert.Equal(t, names(basicEntries), a.EntryNames())

	require.NoError(t, a.Close())
	assert.NoError(t, a.Close()) // idempotent
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.epub"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenCorrupt(t *testing.T) {
	t.Run("reader", func(t *testing.T) {
		junk := []byte("this is not a zip container")
		_, err := OpenReader(bytes.NewReader(junk), int64(len(junk)))
		assert.ErrorIs(t, err, ErrCorruptContainer)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.epub")
		require.NoError(t, os.WriteFile(path, []byte("PK garbage"), 0o600))
		_, err := Open(path)
		assert.ErrorIs(t, err, ErrCorruptContainer)
	})
}

func TestEntryNamesReturnsCopy(t *testing.T) {
	a := openFixture(t, basicEntries)

	got := a.EntryNames()
	got[0] = "clobbered"
	assert.Equal(t, names(basicEntries), a.EntryNames())
}
