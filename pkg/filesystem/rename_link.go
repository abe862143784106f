//go:build unix && !darwin

package filesystem

import (
	"errors"
	"os"
)

// linkNoReplace renames by hard-linking dst to src and then removing src.
// link(2) refuses to replace an existing dst. If src cannot be removed the
// new link is removed again so the rename has no visible effect.
func linkNoReplace(src, dst string) error {
	if err := os.Link(src, dst); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			return renameError(src, dst, linkErr.Err)
		}
		return renameError(src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(dst)
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return renameError(src, dst, pathErr.Err)
		}
		return renameError(src, dst, err)
	}
	return nil
}
