// Package preflight implements the checks that gate a deployment:
// Railway CLI presence, the required-file checklist, and an advisory look
// at the git working tree.
//
// Every check is side-effect free. Remediation (starting the CLI's login
// flow, printing install instructions) is the caller's job, because the
// interactive flow and the report-only check command remediate differently.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mark-wj/AOG-backend/internal/railway"
)

// FileStatus is the result of checking one required file
type FileStatus struct {
	// Name is the filename as configured (relative to the working directory)
	Name string

	// Present is true if the file exists
	// Only existence is checked - contents are never inspected
	Present bool
}

// EnsureTool verifies the Railway CLI is reachable on the system PATH
// Returns the resolved path on success, or ErrToolMissing (wrapped with
// detail) if the binary is absent.
//
// This check runs before everything else: no other check is meaningful
// without the external tool installed.
func EnsureTool(client *railway.Client) (string, error) {
	path, err := client.Installed()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrToolMissing, err)
	}
	return path, nil
}

// CheckFiles tests each required file for existence in dir
// It always checks the complete list - no short-circuit on the first
// missing file - so the caller can report every absent name at once.
//
// Results are returned in the same order as names.
func CheckFiles(dir string, names []string) []FileStatus {
	statuses := make([]FileStatus, 0, len(names))

	for _, name := range names {
		_, err := os.Stat(filepath.Join(dir, name))
		statuses = append(statuses, FileStatus{
			Name: name,
			// Any stat error counts as absent. A permission error on a
			// required file is just as fatal for the deploy as a missing one.
			Present: err == nil,
		})
	}

	return statuses
}

// MissingFiles extracts the names of absent files from a checklist result
// Returns nil if everything is present, otherwise a *MissingFilesError
// listing every absent name.
func MissingFiles(statuses []FileStatus) *MissingFilesError {
	var missing []string
	for _, s := range statuses {
		if !s.Present {
			missing = append(missing, s.Name)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return &MissingFilesError{Missing: missing}
}
