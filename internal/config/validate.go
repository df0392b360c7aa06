package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks if the configuration is valid
// It returns an error if any required fields are missing or invalid
// This should be called after loading the configuration
func (c *Config) Validate() error {
	// Validate Railway CLI configuration
	if err := c.Railway.Validate(); err != nil {
		return fmt.Errorf("railway config: %w", err)
	}

	// Validate project configuration
	if err := c.Project.Validate(); err != nil {
		return fmt.Errorf("project config: %w", err)
	}

	// Validate each environment variable entry
	for i, ev := range c.EnvVars {
		if err := ev.Validate(); err != nil {
			return fmt.Errorf("env_vars[%d]: %w", i, err)
		}
	}

	return nil
}

// Validate checks if the Railway CLI configuration is valid
func (r *RailwayConfig) Validate() error {
	// Binary is required (we set a default, double-check)
	if r.Binary == "" {
		return fmt.Errorf("binary is required")
	}

	// A binary name must be either a bare command name (resolved via PATH)
	// or an absolute path. Relative paths like "./railway" are ambiguous
	// between invocations from different directories, so reject them.
	if strings.Contains(r.Binary, string(filepath.Separator)) && !filepath.IsAbs(r.Binary) {
		return fmt.Errorf("binary must be a command name or an absolute path, got relative path: %s", r.Binary)
	}

	return nil
}

// Validate checks if the project configuration is valid
func (p *ProjectConfig) Validate() error {
	// At least one required file must be configured, otherwise the file
	// checklist silently passes and the preflight loses its point
	if len(p.RequiredFiles) == 0 {
		return fmt.Errorf("required_files must not be empty")
	}

	for _, f := range p.RequiredFiles {
		if f == "" {
			return fmt.Errorf("required_files entries must not be empty")
		}
		// Required files live in the working directory; a path that escapes
		// it would make the checklist check a different project
		if filepath.IsAbs(f) {
			return fmt.Errorf("required file must be relative to the working directory: %s", f)
		}
	}

	return nil
}

// Validate checks if an EnvVarConfig is valid
func (e *EnvVarConfig) Validate() error {
	// Name is required
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}

	// Environment variable names with spaces can't be set in any shell
	// or dashboard, so this is always a config typo
	if strings.ContainsAny(e.Name, " \t") {
		return fmt.Errorf("invalid variable name: %q", e.Name)
	}

	return nil
}
