package railway

import (
	"fmt"
)

// Client wraps the Railway CLI and provides high-level operations
// This wrapper pattern keeps the rest of the code independent of how the
// CLI is invoked:
//  1. Commands call Init/Link/Up instead of assembling argv themselves
//  2. The Runner can be swapped for a fake in tests
//  3. The binary name is configurable in one place
type Client struct {
	// binary is the name or path of the Railway CLI executable
	binary string

	// runner executes the external processes
	runner Runner
}

// NewClient creates a new Railway CLI client
//
// Parameters:
//   - binary: name or absolute path of the Railway executable (usually "railway")
//   - runner: the process runner to use (NewExecRunner() in production)
func NewClient(binary string, runner Runner) *Client {
	return &Client{
		binary: binary,
		runner: runner,
	}
}

// Binary returns the configured executable name
// This is useful for remediation messages and logging
func (c *Client) Binary() string {
	return c.binary
}

// Installed checks whether the Railway CLI is reachable on the system PATH
// Returns the resolved path on success
func (c *Client) Installed() (string, error) {
	path, err := c.runner.LookPath(c.binary)
	if err != nil {
		return "", fmt.Errorf("%s CLI not found in PATH: %w", c.binary, err)
	}
	return path, nil
}

// WhoAmI queries the CLI's authentication state
// We only inspect the exit status: zero means a user is logged in.
// Output is discarded because we never parse the CLI's output.
func (c *Client) WhoAmI() error {
	return c.runner.RunSilent(c.binary, "whoami")
}

// Login starts the CLI's interactive login flow
// This blocks on operator input (typically a browser round-trip) and the
// CLI's own diagnostics are the only feedback on failure.
func (c *Client) Login() error {
	return c.runner.Run(c.binary, "login")
}

// Init creates a new Railway project interactively
func (c *Client) Init() error {
	return c.runner.Run(c.binary, "init")
}

// Link links the working directory to an existing Railway project
func (c *Client) Link() error {
	return c.runner.Run(c.binary, "link")
}

// Up deploys the working directory to the linked Railway project
func (c *Client) Up() error {
	return c.runner.Run(c.binary, "up")
}
