// Package commands implements all CLI commands for railway-deploy.
// It uses the Cobra library which is the standard for CLI applications in Go.
package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Mark-wj/AOG-backend/pkg/version"
)

// Color helpers for console output
// SprintFunc returns a function that wraps its arguments in the color's
// escape codes, which composes nicely with fmt.Printf
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
)

var (
	// cfgFile holds the path to the configuration file
	// This is set by the --config flag
	cfgFile string

	// verbose enables verbose output
	// This is set by the --verbose flag
	verbose bool

	// assumeYes skips the environment-variable readiness confirmation
	// This is set by the --yes flag, for scripted/CI use
	assumeYes bool
)

// rootCmd represents the base command
// Run with no subcommand it walks through the full interactive
// checklist-and-deploy flow, which is the original behavior of this tool
var rootCmd = &cobra.Command{
	Use:   "railway-deploy",
	Short: "Pre-flight checks and deployment helper for Railway",
	Long: `railway-deploy automates the pre-flight checklist for deploying
the backend to Railway.

It verifies that the Railway CLI is installed and authenticated, that the
required project files exist, and that the operator has configured the
required environment variables in the Railway dashboard - then dispatches
to the chosen Railway subcommand.

Run with no arguments for the interactive flow:
  railway-deploy

Or use a subcommand directly:
  railway-deploy check    # run the pre-flight checks only
  railway-deploy up       # pre-flight checks, then deploy
  railway-deploy init     # pre-flight checks, then create a new project
  railway-deploy link     # pre-flight checks, then link an existing project
  railway-deploy secret   # generate a random signing secret`,

	// SilenceUsage prevents showing usage on errors
	SilenceUsage: true,

	// SilenceErrors prevents Cobra from printing errors
	// We'll handle error printing ourselves for better control
	SilenceErrors: true,

	// The interactive flow takes no positional arguments
	Args: cobra.NoArgs,

	// Running the bare command starts the interactive flow
	RunE: interactiveRun,
}

// Execute is the main entry point for the CLI
// It's called from main.go and executes the root command
// Returns an error if command execution fails
func Execute() error {
	return rootCmd.Execute()
}

// init sets up the command structure and global flags
func init() {
	// Persistent flags are available to all subcommands

	// --config flag: Path to config file
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./railway-deploy.toml)")

	// --verbose flag: Enable verbose output
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	// --yes flag: Skip the readiness confirmation prompt
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"assume 'yes' for the environment-variable readiness prompt")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd displays version information about the binary
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version, commit hash, and build time of railway-deploy.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())

		// If verbose flag is set, also print structured info
		if verbose {
			fmt.Println()
			info := version.Get()
			fmt.Printf("Version:    %s\n", info.Version)
			fmt.Printf("Commit:     %s\n", info.Commit)
			fmt.Printf("Build Time: %s\n", info.BuildTime)
		}
	},
}

// GetConfigFile returns the path to the configuration file
// This is used by subcommands to load the configuration
func GetConfigFile() string {
	return cfgFile
}

// IsVerbose returns true if verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// PrintError prints an error message to stderr
// This is a helper function for consistent error formatting
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", Red("[ERROR]"), err)
}

// ExitCode maps an error returned by Execute to the process exit code
//
// Failures delegated to the Railway CLI keep that process's exit status
// un-normalized: a `railway up` that exits 7 makes this tool exit 7.
// The tool's own errors (missing files, declined confirmation, invalid
// menu choice) exit 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was killed by a signal rather
		// than exiting; there is no status to preserve in that case
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}

	return 1
}

// PrintWarning prints a warning message to stderr
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Yellow("[WARN]"), msg)
}

// PrintInfo prints an info message to stdout
func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", Cyan("[INFO]"), msg)
}

// PrintSuccess prints a success message to stdout
func PrintSuccess(msg string) {
	fmt.Printf("%s %s\n", Green("[SUCCESS]"), msg)
}

// VerboseInfo prints an info message only when --verbose is set
func VerboseInfo(msg string) {
	if verbose {
		PrintInfo(msg)
	}
}
