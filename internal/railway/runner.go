// Package railway wraps invocation of the external Railway CLI.
//
// The Railway CLI is treated as an opaque black box: we never parse its
// output, and "exit status zero" is the entire success contract. Everything
// consequential (authentication, project linking, artifact upload, log
// streaming) happens inside the external binary.
package railway

import (
	"os"
	"os/exec"
)

// Runner abstracts external process execution so that command logic can be
// tested without a Railway CLI installed. The production implementation is
// ExecRunner; tests substitute a fake that records invocations.
type Runner interface {
	// Run executes a command with the terminal attached. stdin, stdout and
	// stderr are inherited from the current process, so interactive
	// subcommands (like `railway login`) work as if invoked directly.
	// Blocks until the process exits and returns its error, if any.
	Run(name string, args ...string) error

	// RunSilent executes a command with all output discarded. Used for
	// checks where only the exit status matters (like `railway whoami`).
	RunSilent(name string, args ...string) error

	// LookPath searches for an executable in the system PATH.
	// Returns the resolved path or an error if the binary is not found.
	LookPath(name string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec
type ExecRunner struct{}

// NewExecRunner creates a Runner that executes real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command with the operator's terminal attached
func (r *ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	// Wire the child process directly to our terminal. The Railway CLI
	// opens browser auth flows and prints progress bars, all of which need
	// a real stdin/stdout.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// RunSilent executes the command with output discarded
// Only the exit status is observable by the caller
func (r *ExecRunner) RunSilent(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	// No stdio wiring: the default is /dev/null for all three streams
	return cmd.Run()
}

// LookPath resolves a binary name against the system PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
