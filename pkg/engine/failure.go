package engine

import (
	"fmt"

	"github.com/arthur-debert/rename-files/pkg/errors"
	"github.com/arthur-debert/rename-files/pkg/pathbytes"
)

// Failure describes the rename that stopped a run
type Failure struct {
	Index        int
	Source       string
	Destination  string
	MatchPattern string
	Replacement  string
	Err          error
}

// Error returns the diagnostic line shown to the user:
//
//	<source> (<match> → <replace>): <os error>
func (f *Failure) Error() string {
	return fmt.Sprintf("%s (%s → %s): %s",
		pathbytes.Display(f.Source),
		pathbytes.Display(f.MatchPattern),
		pathbytes.Display(f.Replacement),
		f.Detail())
}

// Detail returns the bare OS error message
func (f *Failure) Detail() string {
	return errors.OSDetail(f.Err)
}

// Code classifies the underlying OS error
func (f *Failure) Code() errors.ErrorCode {
	return errors.ClassifyOSError(f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
