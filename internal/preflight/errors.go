package preflight

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolMissing indicates the Railway CLI could not be found on the PATH.
// Callers match it with errors.Is to print install instructions.
var ErrToolMissing = errors.New("railway CLI not installed")

// MissingFilesError reports every required file that was absent from the
// working directory. The full list is accumulated before this error is
// returned, so the operator sees all missing files at once rather than
// fixing them one run at a time.
type MissingFilesError struct {
	// Missing holds the names of all absent files, in checklist order
	Missing []string
}

// Error implements the error interface
func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("missing required files: %s", strings.Join(e.Missing, ", "))
}
