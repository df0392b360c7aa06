package commands

import (
	"github.com/spf13/cobra"
)

// initCmd creates a new Railway project directly, skipping the menu
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run the pre-flight checks, then create a new Railway project",
	Long: `Run the pre-flight checklist and create a new Railway project
with "railway init".

The Railway CLI prompts for the project name and settings itself.
After initializing, set the environment variables in the Railway
dashboard before deploying.`,
	RunE: initRun,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func initRun(cmd *cobra.Command, args []string) error {
	f, err := newInteractiveFlow()
	if err != nil {
		return err
	}

	if err := f.preflight(); err != nil {
		return err
	}

	return f.runInit()
}
