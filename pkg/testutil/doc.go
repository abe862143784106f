// Package testutil provides helpers for tests that rename real files.
//
// All helpers fail the calling test on error, so test bodies stay focused
// on the behavior being checked. Files are created under t.TempDir() and
// are cleaned up automatically.
package testutil
