package resolverlib

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"time"
)

// MapSource is an in-memory named-text corpus: a named set of documents
// (contract text, test fixtures, worked examples) addressable as an
// fs.FS without touching disk. Adapted from the teacher's mapfs.MapFS,
// which mapped basenames to on-disk paths for embed-style discovery;
// here the map holds the text content itself, since a resolverlib
// caller wants document bodies, not file paths to something else that
// reads them.
type MapSource map[string]string

var _ fs.FS = MapSource(nil)

// Add inserts or replaces the named document's text.
func (m MapSource) Add(name, text string) { m[name] = text }

// Open implements fs.FS. name == "." lists the corpus as a virtual
// directory; any other name must be a document added via Add.
func (m MapSource) Open(name string) (fs.File, error) {
	if name == "." {
		names := make([]string, 0, len(m))
		for n := range m {
			names = append(names, n)
		}
		sort.Strings(names)
		entries := make([]fs.DirEntry, len(names))
		for i, n := range names {
			entries[i] = sourceDirEntry{name: n, size: int64(len(m[n]))}
		}
		return &sourceDir{entries: entries}, nil
	}

	text, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, name)
	}
	return &sourceFile{name: name, Reader: strings.NewReader(text), size: int64(len(text))}, nil
}

// sourceFile implements fs.File over an in-memory document.
type sourceFile struct {
	*strings.Reader
	name string
	size int64
}

func (f *sourceFile) Stat() (fs.FileInfo, error) { return sourceDirEntry{name: f.name, size: f.size}, nil }
func (f *sourceFile) Close() error                { return nil }

// sourceDir implements fs.ReadDirFile for the "." listing.
type sourceDir struct {
	entries []fs.DirEntry
	pos     int
}

func (d *sourceDir) Stat() (fs.FileInfo, error) { return dirInfo{}, nil }
func (d *sourceDir) Read([]byte) (int, error)   { return 0, io.EOF }
func (d *sourceDir) Close() error               { return nil }

func (d *sourceDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	entries := d.entries[d.pos : d.pos+n]
	d.pos += n
	return entries, nil
}

// sourceDirEntry implements both fs.DirEntry and fs.FileInfo for one
// in-memory document.
type sourceDirEntry struct {
	name string
	size int64
}

func (e sourceDirEntry) Name() string               { return e.name }
func (e sourceDirEntry) IsDir() bool                 { return false }
func (e sourceDirEntry) Type() fs.FileMode           { return 0 }
func (e sourceDirEntry) Info() (fs.FileInfo, error)  { return e, nil }
func (e sourceDirEntry) Size() int64                 { return e.size }
func (e sourceDirEntry) Mode() fs.FileMode           { return 0 }
func (e sourceDirEntry) ModTime() time.Time          { return time.Time{} }
func (e sourceDirEntry) Sys() interface{}            { return nil }

// dirInfo is a FileInfo for the virtual root directory.
type dirInfo struct{}

func (dirInfo) Name() string       { return "." }
func (dirInfo) Size() int64        { return 0 }
func (dirInfo) Mode() fs.FileMode  { return fs.ModeDir }
func (dirInfo) ModTime() time.Time { return time.Time{} }
func (dirInfo) IsDir() bool        { return true }
func (dirInfo) Sys() interface{}   { return nil }
