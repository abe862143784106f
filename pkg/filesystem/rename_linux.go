//go:build linux

package filesystem

import "golang.org/x/sys/unix"

const atomicNoReplace = true

func renameNoReplace(src, dst string) error {
	return renameat2NoReplace(unix.Renameat2, src, dst)
}

func renameat2NoReplace(renameat2 func(int, string, int, string, uint) error, src, dst string) error {
	err := renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dst, unix.RENAME_NOREPLACE)
	switch err {
	case nil:
		return nil
	case unix.ENOSYS, unix.EINVAL:
		// ENOSYS: kernel older than 3.15. EINVAL: the filesystem does not
		// support RENAME_NOREPLACE.
		return linkNoReplace(src, dst)
	default:
		return renameError(src, dst, err)
	}
}
