// Package filesystem provides the non-clobbering rename primitive.
//
// A Renamer moves a file to a new name and fails, instead of overwriting,
// when the new name already exists. The OS implementation returned by NewOS
// uses a single atomic system call where the platform has one:
//
//   - Linux:   renameat2(2) with RENAME_NOREPLACE
//   - macOS:   renameatx_np(2) with RENAME_EXCL
//   - Windows: MoveFileEx without MOVEFILE_REPLACE_EXISTING
//
// Other Unix systems fall back to link(2) followed by unlink(2). So does
// Linux when the kernel predates renameat2 (ENOSYS) or the filesystem
// rejects RENAME_NOREPLACE (EINVAL, seen on some FUSE, NFS and older
// overlayfs mounts). link(2) fails atomically when the
// destination exists, so an existing file is never overwritten, but between
// the two calls the file is visible under both names, and directories
// cannot be renamed this way (link(2) fails with EPERM). SupportsAtomicNoReplace
// reports which case applies to the running build.
package filesystem
