// Package config handles loading and managing configuration for railway-deploy.
// It uses Viper to support multiple configuration sources: files, environment variables, and CLI flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the main configuration structure for railway-deploy
// It maps directly to the TOML configuration file structure
//
// Every field has a default, so the tool works with no config file at all.
// The config file only exists for projects that deviate from the stock
// Flask-on-Railway layout (different required files, extra variables, etc).
type Config struct {
	// Railway contains configuration for the external Railway CLI
	Railway RailwayConfig `mapstructure:"railway"`

	// Project contains the deployable-project checklist configuration
	Project ProjectConfig `mapstructure:"project"`

	// EnvVars is the list of environment variables the operator must set
	// in the Railway dashboard before deploying
	EnvVars []EnvVarConfig `mapstructure:"env_vars"`

	// Checks contains toggles for the optional preflight checks
	Checks ChecksConfig `mapstructure:"checks"`
}

// RailwayConfig holds configuration for invoking the Railway CLI
type RailwayConfig struct {
	// Binary is the name (or absolute path) of the Railway CLI executable
	// Default: "railway"
	// The binary is resolved via PATH lookup unless an absolute path is given.
	Binary string `mapstructure:"binary"`
}

// ProjectConfig holds the deployable-project checklist
type ProjectConfig struct {
	// Name is a display name for the project, used only in console output
	Name string `mapstructure:"name"`

	// RequiredFiles is the list of files that must exist in the working
	// directory before a deploy is allowed. Their contents are never read,
	// only their presence is checked.
	// Default: the standard Flask-on-Railway set
	// (requirements.txt, Procfile, app.py, runtime.txt)
	RequiredFiles []string `mapstructure:"required_files"`
}

// EnvVarConfig is one environment variable the operator must configure
// in the Railway dashboard. The tool cannot verify these remotely, so they
// are only displayed and acknowledged, never read.
type EnvVarConfig struct {
	// Name is the variable name as it must appear in the Railway dashboard
	Name string `mapstructure:"name"`

	// Description is a one-line human-readable purpose of the variable
	Description string `mapstructure:"description"`
}

// ChecksConfig holds toggles for optional preflight checks
type ChecksConfig struct {
	// GitStatus enables the advisory check for uncommitted changes in the
	// working directory. Railway deploys the local directory, so deploying
	// with a dirty tree usually means deploying untested code.
	// Default: true
	GitStatus bool `mapstructure:"git_status"`
}

// Load reads the configuration from a file and environment variables
// It follows this precedence order (highest to lowest):
//  1. CLI flags (handled by caller)
//  2. Environment variables
//  3. Configuration file
//  4. Default values
//
// Parameters:
//   - configPath: Path to the configuration file. If empty, will look for
//     "railway-deploy.toml" in the current directory
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set configuration file details
	if configPath != "" {
		// User specified a config file path explicitly
		v.SetConfigFile(configPath)
	} else {
		// Look for config file in current directory
		v.SetConfigName("railway-deploy") // Name of config file (without extension)
		v.SetConfigType("toml")           // Config file format
		v.AddConfigPath(".")              // Look in current directory
	}

	// Enable environment variable support
	// Example: RAILWAY_DEPLOY_RAILWAY_BINARY=/usr/local/bin/railway
	// The key replacer maps nested keys like "railway.binary" to the
	// underscore form an environment variable can actually carry.
	v.SetEnvPrefix("RAILWAY_DEPLOY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	// These are used if no value is provided in the config file or environment
	setDefaults(v)

	// Read the configuration file
	if err := v.ReadInConfig(); err != nil {
		// Check if the error is because the file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found - this is only an error if user specified a path
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			// Otherwise we run with defaults, which is the normal case
		} else {
			// Some other error reading the config file
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the configuration into our Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Apply overrides and defaults viper can't express
	applyEnvOverrides(v, &cfg)

	return &cfg, nil
}

// setDefaults sets default values for configuration options
// These defaults reproduce the behavior of running against a stock
// Flask backend with no config file present
func setDefaults(v *viper.Viper) {
	// Railway CLI defaults
	v.SetDefault("railway.binary", "railway")

	// Project defaults: the standard Flask-on-Railway file set.
	// requirements.txt - Python dependency manifest
	// Procfile        - process start declaration (web: gunicorn ...)
	// app.py          - application entry point
	// runtime.txt     - Python runtime version pin
	v.SetDefault("project.required_files", []string{
		"requirements.txt",
		"Procfile",
		"app.py",
		"runtime.txt",
	})

	// Checks defaults
	v.SetDefault("checks.git_status", true)
}

// applyEnvOverrides applies overrides and list defaults that viper's
// SetDefault can't handle (viper cannot default a slice of structs)
func applyEnvOverrides(v *viper.Viper, cfg *Config) {
	// Fall back to RAILWAY_BIN for the binary, matching the convention other
	// Railway tooling uses. It only applies when the binary is still the
	// built-in default: an explicit config-file value or the prefixed
	// RAILWAY_DEPLOY_RAILWAY_BINARY variable always wins.
	if !v.InConfig("railway.binary") && os.Getenv("RAILWAY_DEPLOY_RAILWAY_BINARY") == "" {
		if bin := os.Getenv("RAILWAY_BIN"); bin != "" {
			cfg.Railway.Binary = bin
		}
	}

	// Default environment variable checklist if none configured.
	// These are the variables the deployed Flask app reads at startup.
	if len(cfg.EnvVars) == 0 {
		cfg.EnvVars = DefaultEnvVars()
	}
}

// DefaultEnvVars returns the environment variables the stock backend
// expects to find in the Railway dashboard
func DefaultEnvVars() []EnvVarConfig {
	return []EnvVarConfig{
		{Name: "MONGO_URI", Description: "MongoDB connection string (e.g. from MongoDB Atlas)"},
		{Name: "JWT_SECRET_KEY", Description: "Secret key for signing JWT tokens"},
		{Name: "FLASK_ENV", Description: "Runtime mode - set to 'production'"},
	}
}
