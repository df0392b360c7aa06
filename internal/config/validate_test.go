package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a minimal configuration that passes validation
// Tests mutate one field at a time to check each rule in isolation.
func validConfig() *Config {
	return &Config{
		Railway: RailwayConfig{Binary: "railway"},
		Project: ProjectConfig{
			RequiredFiles: []string{"requirements.txt", "Procfile", "app.py", "runtime.txt"},
		},
		EnvVars: DefaultEnvVars(),
		Checks:  ChecksConfig{GitStatus: true},
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErrText string
	}{
		{
			name:        "empty binary",
			mutate:      func(c *Config) { c.Railway.Binary = "" },
			wantErrText: "binary is required",
		},
		{
			name:        "relative path binary",
			mutate:      func(c *Config) { c.Railway.Binary = "./bin/railway" },
			wantErrText: "command name or an absolute path",
		},
		{
			name:        "no required files",
			mutate:      func(c *Config) { c.Project.RequiredFiles = nil },
			wantErrText: "required_files must not be empty",
		},
		{
			name:        "empty required file entry",
			mutate:      func(c *Config) { c.Project.RequiredFiles = []string{"requirements.txt", ""} },
			wantErrText: "entries must not be empty",
		},
		{
			name:        "absolute required file",
			mutate:      func(c *Config) { c.Project.RequiredFiles = []string{"/etc/passwd"} },
			wantErrText: "must be relative to the working directory",
		},
		{
			name:        "env var without name",
			mutate:      func(c *Config) { c.EnvVars = []EnvVarConfig{{Description: "something"}} },
			wantErrText: "name is required",
		},
		{
			name:        "env var name with space",
			mutate:      func(c *Config) { c.EnvVars = []EnvVarConfig{{Name: "MY VAR"}} },
			wantErrText: "invalid variable name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.wantErrText) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErrText)
			}
		})
	}
}

func TestValidateAbsoluteBinaryAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Railway.Binary = "/usr/local/bin/railway"
	assert.NoError(t, cfg.Validate())
}
