// Package pathbytes converts between native path values and the raw byte
// sequences filename substitution operates on.
//
// File names on Unix are arbitrary byte sequences; they are not required to
// be valid UTF-8. Go strings already carry bytes without validating them, so
// the conversion here is an exact copy in both directions. Callers must keep
// path values in this byte form until the rename system call and never pass
// them through text APIs that replace or reject invalid sequences.
package pathbytes
