//go:build windows

package filesystem

import "golang.org/x/sys/windows"

const atomicNoReplace = true

func renameNoReplace(src, dst string) error {
	from, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return renameError(src, dst, err)
	}
	to, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return renameError(src, dst, err)
	}
	// Without MOVEFILE_REPLACE_EXISTING the move fails if dst exists; without
	// MOVEFILE_COPY_ALLOWED it never turns into a copy across volumes.
	if err := windows.MoveFileEx(from, to, 0); err != nil {
		return renameError(src, dst, err)
	}
	return nil
}
