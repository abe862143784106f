package testutil

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// MemRenamer is an in-memory stand-in for the OS no-replace renamer. It
// records every rename it is asked to perform, in call order.
//
// afero has no no-replace rename, so the destination is checked before
// renaming. That is only safe because tests drive it from one goroutine.
type MemRenamer struct {
	Fs    afero.Fs
	Calls []string
}

// NewMemRenamer creates a MemRenamer over a fresh afero.MemMapFs holding
// the named files. Each file's content is its own name.
func NewMemRenamer(t TB, names ...string) *MemRenamer {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, name := range names {
		if err := afero.WriteFile(mem, name, []byte(name), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return &MemRenamer{Fs: mem}
}

// RenameNoReplace moves src to dst, failing with fs.ErrExist if dst exists
func (m *MemRenamer) RenameNoReplace(src, dst string) error {
	m.Calls = append(m.Calls, src)

	if _, err := m.Fs.Stat(src); err != nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrNotExist}
	}
	if _, err := m.Fs.Stat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	}
	if err := m.Fs.Rename(src, dst); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			err = linkErr.Err
		}
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
	}
	return nil
}

// Exists reports whether name exists in the in-memory filesystem
func (m *MemRenamer) Exists(t TB, name string) bool {
	t.Helper()

	ok, err := afero.Exists(m.Fs, name)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", name, err)
	}
	return ok
}

// Content returns the content of name in the in-memory filesystem
func (m *MemRenamer) Content(t TB, name string) string {
	t.Helper()

	data, err := afero.ReadFile(m.Fs, name)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", name, err)
	}
	return string(data)
}

// TB is the subset of testing.TB the helpers need
type TB interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
