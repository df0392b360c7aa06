package commands

import (
	"github.com/spf13/cobra"
)

// linkCmd links the working directory to an existing Railway project
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Run the pre-flight checks, then link an existing Railway project",
	Long: `Run the pre-flight checklist and link the working directory to an
existing Railway project with "railway link".

The Railway CLI presents its own project picker.`,
	RunE: linkRun,
}

func init() {
	rootCmd.AddCommand(linkCmd)
}

func linkRun(cmd *cobra.Command, args []string) error {
	f, err := newInteractiveFlow()
	if err != nil {
		return err
	}

	if err := f.preflight(); err != nil {
		return err
	}

	return f.runLink()
}
