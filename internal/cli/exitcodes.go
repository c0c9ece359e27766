package cli

import (
	"errors"

	"github.com/yaklabco/htmlvet/pkg/fsutil"
)

// Exit codes for htmlvet.
const (
	// ExitSuccess indicates the document was read and every check passed.
	ExitSuccess = 0

	// ExitChecksFailed indicates the document was read but at least one
	// check failed.
	ExitChecksFailed = 1

	// ExitInputError indicates the input file was missing or unreadable;
	// no checks ran.
	ExitInputError = 2
)

// ErrChecksFailed signals a failed report for exit-code purposes.
// It is not logged as a command failure: the report already told the user.
var ErrChecksFailed = errors.New("document checks failed")

// ExitCodeForError maps a command error to a process exit code.
// Input errors are the only reserved non-check failure; anything else
// (config problems, write errors) folds into the generic failure code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case fsutil.IsInputError(err):
		return ExitInputError
	default:
		return ExitChecksFailed
	}
}
