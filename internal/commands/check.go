package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mark-wj/AOG-backend/internal/config"
	"github.com/Mark-wj/AOG-backend/internal/preflight"
	"github.com/Mark-wj/AOG-backend/internal/railway"
)

// checkCmd runs the preflight checks without any prompts or dispatch
// Unlike the interactive flow, a failed identity query here does NOT start
// the login flow - this command only reports, it never remediates, so it's
// safe to run from scripts and CI.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the pre-flight checks and report",
	Long: `Run all pre-flight checks without deploying anything.

Checks performed:
  1. Railway CLI present on PATH
  2. Railway authentication state
  3. Required project files exist
  4. Git working tree state (advisory)

Exits non-zero if the CLI is missing, authentication is absent, or any
required file is missing. The git check only warns.

Examples:
  # Verify the project is ready to deploy
  railway-deploy check

  # Same, with the list of uncommitted files
  railway-deploy check --verbose`,
	RunE: checkRun,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := railway.NewClient(cfg.Railway.Binary, railway.NewExecRunner())

	// 1. Tool presence - fail immediately, nothing else is checkable
	path, err := preflight.EnsureTool(client)
	if err != nil {
		PrintWarning("Install the Railway CLI with: npm install -g @railway/cli")
		return err
	}
	PrintSuccess(fmt.Sprintf("Railway CLI found (%s)", path))

	failed := false

	// 2. Authentication - report only, never start the login flow
	if err := client.WhoAmI(); err != nil {
		PrintWarning("Not logged in to Railway - run: railway login")
		failed = true
	} else {
		PrintSuccess("Logged in to Railway")
	}

	// 3. Required files - always check the full list
	statuses := preflight.CheckFiles(".", cfg.Project.RequiredFiles)
	for _, s := range statuses {
		if s.Present {
			PrintSuccess(fmt.Sprintf("Found %s", s.Name))
		} else {
			PrintWarning(fmt.Sprintf("Missing %s", s.Name))
		}
	}
	missing := preflight.MissingFiles(statuses)
	if missing != nil {
		failed = true
	}

	// 4. Git working tree - advisory only
	if cfg.Checks.GitStatus {
		state, err := preflight.CheckGitState(".")
		if err != nil {
			PrintWarning(fmt.Sprintf("could not check git status: %v", err))
		} else if state.IsRepo && state.Dirty {
			PrintWarning(fmt.Sprintf("Working tree has %d uncommitted files", len(state.ChangedFiles)))
			if IsVerbose() {
				for _, f := range state.ChangedFiles {
					fmt.Printf("    %s\n", f)
				}
			}
		}
	}

	if failed {
		if missing != nil {
			return missing
		}
		return fmt.Errorf("pre-flight checks failed")
	}

	PrintSuccess("All pre-flight checks passed")
	return nil
}
