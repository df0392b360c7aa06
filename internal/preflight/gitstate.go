package preflight

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// GitState describes the git status of the working directory
// Railway deploys the local directory as-is, so uncommitted changes mean
// the deployed code differs from what's in version control. This check is
// advisory only - it never blocks a deploy.
type GitState struct {
	// IsRepo is true if the directory is inside a git repository
	IsRepo bool

	// Dirty is true if the working tree has uncommitted changes
	Dirty bool

	// ChangedFiles lists the paths with uncommitted changes, sorted
	ChangedFiles []string
}

// CheckGitState inspects the git working tree at dir
//
// A directory that is not a git repository is not an error - plenty of
// one-off deploys happen from plain directories - so that case returns
// IsRepo=false with a nil error.
func CheckGitState(dir string) (*GitState, error) {
	// DetectDotGit walks up parent directories looking for .git,
	// the same way the git CLI does
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return &GitState{IsRepo: false}, nil
		}
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	state := &GitState{IsRepo: true}

	if !status.IsClean() {
		state.Dirty = true

		// status is a map keyed by path; collect and sort for stable output
		for path, fileStatus := range status {
			// Untracked and modified both count - either way the deployed
			// tree won't match what's committed
			if fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified {
				state.ChangedFiles = append(state.ChangedFiles, path)
			}
		}
		sort.Strings(state.ChangedFiles)
	}

	return state, nil
}
