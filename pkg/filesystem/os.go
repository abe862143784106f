package filesystem

import "os"

// Renamer moves src to dst, failing if dst already exists.
//
// Failures are reported as *os.LinkError with Op "rename", wrapping the
// underlying OS error, so callers can use errors.Is with fs.ErrExist,
// fs.ErrNotExist and fs.ErrPermission.
type Renamer interface {
	RenameNoReplace(src, dst string) error
}

// osRenamer implements Renamer using the platform's rename system calls
type osRenamer struct{}

// NewOS creates a Renamer that operates on the real filesystem
func NewOS() Renamer {
	return &osRenamer{}
}

func (o *osRenamer) RenameNoReplace(src, dst string) error {
	return renameNoReplace(src, dst)
}

// SupportsAtomicNoReplace reports whether this build renames with a single
// atomic no-replace system call rather than the link/unlink fallback.
func SupportsAtomicNoReplace() bool {
	return atomicNoReplace
}

func renameError(src, dst string, err error) error {
	return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
}
