// Package engine renames files by applying a regular-expression
// substitution to each path.
//
// For every target, in order, the engine:
//
//  1. takes the raw bytes of the path (see package pathbytes),
//  2. replaces the first, leftmost match of the pattern, expanding group
//     references in the replacement with regexp.Expand,
//  3. turns the result back into a path, and
//  4. renames the source to it with a Renamer that never overwrites.
//
// A target whose computed name equals its current name is left alone and
// no system call is made. The first failed rename stops the run: later
// targets are not attempted and earlier renames are not rolled back.
//
// Replacement templates follow regexp.Expand: $1 and ${1} name group 1,
// $name and ${name} name a named group, $$ is a literal dollar sign. A
// reference to a group that does not exist expands to the empty string,
// and $1x is read as the group named "1x"; write ${1}x instead.
//
// Patterns use RE2 syntax. The classes \d, \w, \s and \b are ASCII-only;
// use \pN or \pL to match digits or letters from other scripts.
package engine
