//go:build unix && !linux && !darwin

package filesystem

const atomicNoReplace = false

func renameNoReplace(src, dst string) error {
	return linkNoReplace(src, dst)
}
