package filesystem

// Each platform backend (rename_linux.go, rename_darwin.go,
// rename_windows.go, rename_link.go, rename_other.go) must provide these.
var (
	_ func(src, dst string) error = renameNoReplace
	_ bool                        = atomicNoReplace
)
