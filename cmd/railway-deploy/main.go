// Package main is the entry point for the railway-deploy CLI application.
//
// The main package is kept minimal. All the actual logic lives in other
// packages (especially internal/commands).
package main

import (
	"os"

	"github.com/Mark-wj/AOG-backend/internal/commands"
)

// main is the entry point of the application
func main() {
	// Execute the root command (which handles all subcommands)
	// This delegates to the Cobra command structure defined in internal/commands
	if err := commands.Execute(); err != nil {
		// Print the error and exit non-zero. Failures of the external
		// Railway CLI keep its exit status; our own errors exit 1.
		commands.PrintError(err)
		os.Exit(commands.ExitCode(err))
	}

	// If we get here, the command executed successfully
	// The program will exit with status code 0 (success)
}
