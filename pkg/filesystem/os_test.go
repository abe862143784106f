package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rename-files/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	assert.NotNil(t, NewOS())
}

func TestOSRenameNoReplace(t *testing.T) {
	r := NewOS()

	t.Run("renames when destination is free", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.CreateFile(t, dir, "foo.txt", "foo")
		dst := filepath.Join(dir, "bar.txt")

		require.NoError(t, r.RenameNoReplace(src, dst))

		assert.NoFileExists(t, src)
		assert.Equal(t, "foo", testutil.ReadFile(t, dst))
	})

	t.Run("refuses to overwrite an existing destination", func(t *testing.T) {
		dir := t.TempDir()
		src := testutil.CreateFile(t, dir, "a.txt", "source")
		dst := testutil.CreateFile(t, dir, "b.txt", "existing")

		err := r.RenameNoReplace(src, dst)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrExist), "got %v", err)

		var linkErr *os.LinkError
		require.True(t, errors.As(err, &linkErr))
		assert.Equal(t, "rename", linkErr.Op)
		assert.Equal(t, src, linkErr.Old)
		assert.Equal(t, dst, linkErr.New)

		assert.Equal(t, "source", testutil.ReadFile(t, src))
		assert.Equal(t, "existing", testutil.ReadFile(t, dst))
	})

	t.Run("missing source", func(t *testing.T) {
		dir := t.TempDir()
		err := r.RenameNoReplace(filepath.Join(dir, "gone"), filepath.Join(dir, "new"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	})

	t.Run("renames into another directory", func(t *testing.T) {
		dir := t.TempDir()
		sub := testutil.CreateDir(t, dir, "sub")
		src := testutil.CreateFile(t, dir, "file", "x")

		require.NoError(t, r.RenameNoReplace(src, filepath.Join(sub, "file")))
		assert.FileExists(t, filepath.Join(sub, "file"))
	})

	t.Run("non-utf8 names", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "bad\xffname")
		dst := filepath.Join(dir, "good")
		if err := os.WriteFile(src, []byte("raw"), 0644); err != nil {
			t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
		}

		require.NoError(t, r.RenameNoReplace(src, dst))
		assert.Equal(t, "raw", testutil.ReadFile(t, dst))
	})
}

func TestSupportsAtomicNoReplace(t *testing.T) {
	assert.Equal(t, atomicNoReplace, SupportsAtomicNoReplace())
}
