//go:build !unix && !windows

package filesystem

import "errors"

const atomicNoReplace = false

func renameNoReplace(src, dst string) error {
	return renameError(src, dst, errors.ErrUnsupported)
}
