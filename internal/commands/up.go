package commands

import (
	"github.com/spf13/cobra"
)

// upCmd deploys directly, skipping the menu
// The preflight checks and the readiness gate still run - `up` is the
// interactive flow with the menu choice pre-answered, not a bypass.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Run the pre-flight checks, then deploy",
	Long: `Run the full pre-flight checklist and deploy the working directory
with "railway up".

The environment-variable readiness prompt still applies; pass --yes to
skip it for scripted use.

Examples:
  # Checked deploy with the confirmation prompt
  railway-deploy up

  # Non-interactive deploy (e.g. from a script)
  railway-deploy up --yes`,
	RunE: upRun,
}

func init() {
	rootCmd.AddCommand(upCmd)
}

func upRun(cmd *cobra.Command, args []string) error {
	f, err := newInteractiveFlow()
	if err != nil {
		return err
	}

	if err := f.preflight(); err != nil {
		return err
	}

	return f.runDeploy()
}
