package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mark-wj/AOG-backend/internal/config"
	"github.com/Mark-wj/AOG-backend/internal/preflight"
	"github.com/Mark-wj/AOG-backend/internal/railway"
)

// ErrDeclined is returned when the operator answers "no" (or anything that
// isn't exactly "y"/"Y") at the environment-variable readiness prompt
var ErrDeclined = errors.New("deployment cancelled: environment variables not confirmed")

// flow holds the dependencies of the interactive checklist
// Everything that touches the outside world (the Railway CLI, the terminal,
// the filesystem root) is injected so the whole flow is testable.
type flow struct {
	cfg    *config.Config
	client *railway.Client
	prompt Prompter

	// dir is the working directory the checks run against
	dir string

	// skipConfirm bypasses the readiness prompt (--yes flag)
	skipConfirm bool

	// out receives all checklist and guidance output
	out io.Writer
}

// newInteractiveFlow loads the configuration and wires real dependencies
// (the exec-backed Railway client, the terminal prompter) into a flow
func newInteractiveFlow() (*flow, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &flow{
		cfg:         cfg,
		client:      railway.NewClient(cfg.Railway.Binary, railway.NewExecRunner()),
		prompt:      NewTerminalPrompter(),
		dir:         ".",
		skipConfirm: assumeYes,
		out:         os.Stdout,
	}, nil
}

// interactiveRun is the RunE for the bare root command
func interactiveRun(cmd *cobra.Command, args []string) error {
	f, err := newInteractiveFlow()
	if err != nil {
		return err
	}
	return f.run()
}

// run walks the checklist top to bottom with early-exit aborts:
// the preflight steps, then the menu dispatch.
func (f *flow) run() error {
	f.banner()

	if err := f.preflight(); err != nil {
		return err
	}

	return f.dispatch()
}

// preflight runs checklist steps 1-5: tool presence, authentication,
// required files, git state (advisory) and the readiness gate.
// The direct subcommands (up, init, link) run this before dispatching.
func (f *flow) preflight() error {
	// 1. Tool presence - everything else is pointless without the CLI
	if err := f.checkTool(); err != nil {
		return err
	}

	// 2. Authentication - delegate to `railway login` if needed
	if err := f.checkAuth(); err != nil {
		return err
	}

	// 3. Required files - check the full list, report every missing name
	if err := f.checkFiles(); err != nil {
		return err
	}

	// 4. Git working tree - advisory only, never blocks
	f.checkGitState()

	// 5. Environment-variable readiness gate
	return f.confirmEnvVars()
}

func (f *flow) banner() {
	name := f.cfg.Project.Name
	if name == "" {
		name = "backend"
	}
	fmt.Fprintln(f.out, "============================================================")
	fmt.Fprintf(f.out, "🚀 Railway deployment helper - %s\n", name)
	fmt.Fprintln(f.out, "============================================================")
	fmt.Fprintln(f.out)
}

// checkTool verifies the Railway CLI is on the PATH
// On failure it prints install instructions before returning the error.
func (f *flow) checkTool() error {
	path, err := preflight.EnsureTool(f.client)
	if err != nil {
		fmt.Fprintf(f.out, "%s Railway CLI not found\n", Red("✗"))
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, "Install it with one of:")
		fmt.Fprintln(f.out, "  npm install -g @railway/cli")
		fmt.Fprintln(f.out, "  brew install railway")
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, "Then run this tool again.")
		return err
	}

	fmt.Fprintf(f.out, "%s Railway CLI found (%s)\n", Green("✓"), path)
	return nil
}

// checkAuth verifies authentication, delegating to the CLI's login flow
// when the identity query fails
func (f *flow) checkAuth() error {
	if err := f.client.WhoAmI(); err == nil {
		fmt.Fprintf(f.out, "%s Logged in to Railway\n", Green("✓"))
		return nil
	}

	fmt.Fprintf(f.out, "%s Not logged in - starting Railway login...\n", Yellow("!"))
	if err := f.client.Login(); err != nil {
		return fmt.Errorf("railway login failed: %w", err)
	}
	return nil
}

// checkFiles runs the required-file checklist
// Every file gets its own status line; if any are missing, the summary
// lists all of them before the flow aborts.
func (f *flow) checkFiles() error {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "Checking required files:")

	statuses := preflight.CheckFiles(f.dir, f.cfg.Project.RequiredFiles)
	for _, s := range statuses {
		if s.Present {
			fmt.Fprintf(f.out, "  %s %s\n", Green("✓"), s.Name)
		} else {
			fmt.Fprintf(f.out, "  %s %s (missing)\n", Red("✗"), s.Name)
		}
	}

	if missing := preflight.MissingFiles(statuses); missing != nil {
		fmt.Fprintln(f.out)
		fmt.Fprintf(f.out, "%s Cannot deploy - missing: %v\n", Red("✗"), missing.Missing)
		fmt.Fprintln(f.out, "Create the files above in the project directory and run again.")
		return missing
	}

	return nil
}

// checkGitState warns about uncommitted changes in the working tree
// Failures here are themselves only warnings - a broken .git directory
// should not block a deploy that Railway itself would accept.
func (f *flow) checkGitState() {
	if !f.cfg.Checks.GitStatus {
		return
	}

	state, err := preflight.CheckGitState(f.dir)
	if err != nil {
		PrintWarning(fmt.Sprintf("could not check git status: %v", err))
		return
	}

	if state.IsRepo && state.Dirty {
		fmt.Fprintln(f.out)
		fmt.Fprintf(f.out, "%s Working tree has uncommitted changes (%d files) - Railway will deploy them as-is\n",
			Yellow("!"), len(state.ChangedFiles))
		if IsVerbose() {
			for _, file := range state.ChangedFiles {
				fmt.Fprintf(f.out, "    %s\n", file)
			}
		}
	}
}

// confirmEnvVars displays the environment-variable checklist and requires
// an explicit "y"/"Y" to continue. The tool cannot verify variables set in
// the Railway dashboard, so the operator's acknowledgment stands in for a
// real check.
func (f *flow) confirmEnvVars() error {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "Required environment variables (set these in the Railway dashboard):")
	for _, ev := range f.cfg.EnvVars {
		fmt.Fprintf(f.out, "  %s - %s\n", Cyan(ev.Name), ev.Description)
	}
	fmt.Fprintln(f.out)

	if f.skipConfirm {
		fmt.Fprintln(f.out, "Skipping confirmation (--yes).")
		return nil
	}

	answer, err := f.prompt.Input("Have you configured these variables? (y/N)")
	if err != nil {
		return fmt.Errorf("confirmation cancelled: %w", err)
	}

	if !ParseConfirm(answer) {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, "Set the variables in the Railway dashboard first:")
		fmt.Fprintln(f.out, "  railway open   (then: project → Variables)")
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, "Generate a signing secret with:")
		fmt.Fprintln(f.out, "  python -c \"import secrets; print(secrets.token_hex(32))\"")
		fmt.Fprintln(f.out, "or:")
		fmt.Fprintln(f.out, "  railway-deploy secret")
		return ErrDeclined
	}

	return nil
}

// dispatch presents the menu and invokes the chosen Railway subcommand
// The switch over Action is exhaustive: every menu choice, including the
// invalid catch-all, has an explicit branch.
func (f *flow) dispatch() error {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "What would you like to do?")
	fmt.Fprintln(f.out, "  1) Initialize a new Railway project")
	fmt.Fprintln(f.out, "  2) Link to an existing Railway project")
	fmt.Fprintln(f.out, "  3) Deploy")
	fmt.Fprintln(f.out, "  4) Exit")
	fmt.Fprintln(f.out)

	answer, err := f.prompt.Input("Select an option [1-4]")
	if err != nil {
		return fmt.Errorf("selection cancelled: %w", err)
	}

	switch action := ParseAction(answer); action {
	case ActionInit:
		return f.runInit()

	case ActionLink:
		return f.runLink()

	case ActionDeploy:
		return f.runDeploy()

	case ActionExit:
		fmt.Fprintln(f.out, "Nothing to do. Bye!")
		return nil

	case ActionInvalid:
		return fmt.Errorf("invalid option: %q (expected 1-4)", answer)

	default:
		// Unreachable: ParseAction only returns the values above
		return fmt.Errorf("invalid option: %q", answer)
	}
}

// runInit invokes `railway init` and prints the follow-up steps
// Initializing a project is only half the job - the variables still have
// to be set in the dashboard before the first deploy.
func (f *flow) runInit() error {
	if err := f.client.Init(); err != nil {
		return fmt.Errorf("railway init failed: %w", err)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "%s Project initialized\n", Green("✓"))
	fmt.Fprintln(f.out, "Next steps:")
	fmt.Fprintln(f.out, "  1. Set the environment variables in the Railway dashboard")
	fmt.Fprintln(f.out, "  2. Run this tool again and choose Deploy")
	f.footer()
	return nil
}

// runLink invokes `railway link`
func (f *flow) runLink() error {
	if err := f.client.Link(); err != nil {
		return fmt.Errorf("railway link failed: %w", err)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "%s Project linked\n", Green("✓"))
	f.footer()
	return nil
}

// runDeploy invokes `railway up` and prints the result-viewing hints
func (f *flow) runDeploy() error {
	if err := f.client.Up(); err != nil {
		return fmt.Errorf("railway up failed: %w", err)
	}
	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "%s Deployment complete\n", Green("✓"))
	fmt.Fprintln(f.out, "View the result with:")
	fmt.Fprintln(f.out, "  railway open   # open the project dashboard")
	fmt.Fprintln(f.out, "  railway logs   # stream deployment logs")
	f.footer()
	return nil
}

// footer prints the static reference block of related Railway commands
func (f *flow) footer() {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "Useful Railway commands:")
	fmt.Fprintln(f.out, "  railway open     open the project dashboard")
	fmt.Fprintln(f.out, "  railway logs     view deployment logs")
	fmt.Fprintln(f.out, "  railway status   show project status")
	fmt.Fprintln(f.out, "  railway run      run a command with project variables")
}
