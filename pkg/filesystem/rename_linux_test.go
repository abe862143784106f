//go:build linux

package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/rename-files/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func failingRenameat2(errno unix.Errno) func(int, string, int, string, uint) error {
	return func(int, string, int, string, uint) error { return errno }
}

func TestRenameat2FallsBackToLink(t *testing.T) {
	tests := []struct {
		name  string
		errno unix.Errno
	}{
		{"kernel without renameat2", unix.ENOSYS},
		{"filesystem without RENAME_NOREPLACE", unix.EINVAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := testutil.CreateFile(t, dir, "a.txt", "a")
			dst := filepath.Join(dir, "b.txt")

			require.NoError(t, renameat2NoReplace(failingRenameat2(tt.errno), src, dst))
			assert.NoFileExists(t, src)
			assert.Equal(t, "a", testutil.ReadFile(t, dst))

			taken := testutil.CreateFile(t, dir, "c.txt", "c")
			err := renameat2NoReplace(failingRenameat2(tt.errno), dst, taken)
			assert.True(t, errors.Is(err, fs.ErrExist), "got %v", err)
			assert.Equal(t, "a", testutil.ReadFile(t, dst))
			assert.Equal(t, "c", testutil.ReadFile(t, taken))
		})
	}
}

func TestRenameat2OtherErrorsAreReturned(t *testing.T) {
	dir := t.TempDir()
	src := testutil.CreateFile(t, dir, "a.txt", "a")

	err := renameat2NoReplace(failingRenameat2(unix.EXDEV), src, filepath.Join(dir, "b.txt"))

	assert.True(t, errors.Is(err, unix.EXDEV), "got %v", err)
	assert.FileExists(t, src)
}
