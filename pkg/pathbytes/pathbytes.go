package pathbytes

import "strings"

// Encode returns the raw bytes of a native path. The result is a fresh copy
// and may be modified by the caller.
func Encode(path string) []byte {
	return []byte(path)
}

// Decode builds a native path from raw bytes without any text validation.
// Decode(Encode(p)) == p for every path p.
func Decode(raw []byte) string {
	return string(raw)
}

// Display renders a path for human-readable output. Invalid UTF-8 sequences
// are replaced with U+FFFD, so the result must never be used as a path.
func Display(path string) string {
	return strings.ToValidUTF8(path, "�")
}
