//go:build darwin

package filesystem

import "golang.org/x/sys/unix"

const atomicNoReplace = true

func renameNoReplace(src, dst string) error {
	if err := unix.RenameatxNp(unix.AT_FDCWD, src, unix.AT_FDCWD, dst, unix.RENAME_EXCL); err != nil {
		return renameError(src, dst, err)
	}
	return nil
}
