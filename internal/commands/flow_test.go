package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mark-wj/AOG-backend/internal/config"
	"github.com/Mark-wj/AOG-backend/internal/preflight"
	"github.com/Mark-wj/AOG-backend/internal/railway"
)

// fakeRunner implements railway.Runner and records invocations
type fakeRunner struct {
	runCalls    []string
	silentCalls []string

	runErr      error
	silentErr   error
	lookPathErr error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.runCalls = append(f.runCalls, name+" "+strings.Join(args, " "))
	return f.runErr
}

func (f *fakeRunner) RunSilent(name string, args ...string) error {
	f.silentCalls = append(f.silentCalls, name+" "+strings.Join(args, " "))
	return f.silentErr
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

// scriptedPrompter answers prompts from a fixed script
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Input(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", errors.New("prompter script exhausted")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// newTestFlow builds a flow against a temp directory that already contains
// all four required files. The git check is disabled - it has its own tests.
func newTestFlow(t *testing.T, runner *fakeRunner, answers ...string) (*flow, *scriptedPrompter, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"requirements.txt", "Procfile", "app.py", "runtime.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0644))
	}

	cfg := &config.Config{
		Railway: config.RailwayConfig{Binary: "railway"},
		Project: config.ProjectConfig{
			Name:          "test-api",
			RequiredFiles: []string{"requirements.txt", "Procfile", "app.py", "runtime.txt"},
		},
		EnvVars: config.DefaultEnvVars(),
		Checks:  config.ChecksConfig{GitStatus: false},
	}
	require.NoError(t, cfg.Validate())

	prompt := &scriptedPrompter{answers: answers}
	out := &bytes.Buffer{}

	f := &flow{
		cfg:    cfg,
		client: railway.NewClient("railway", runner),
		prompt: prompt,
		dir:    dir,
		out:    out,
	}
	return f, prompt, out
}

func TestFlowExitChoice(t *testing.T) {
	runner := &fakeRunner{}
	f, _, out := newTestFlow(t, runner, "y", "4")

	// Choice 4 exits cleanly without invoking any deployment subcommand
	require.NoError(t, f.run())

	assert.Empty(t, runner.runCalls, "exit must not invoke any railway subcommand")
	assert.Contains(t, out.String(), "Nothing to do")
}

func TestFlowDeployHappyPath(t *testing.T) {
	runner := &fakeRunner{}
	f, _, out := newTestFlow(t, runner, "y", "3")

	require.NoError(t, f.run())

	// Deploy invoked exactly once
	assert.Equal(t, []string{"railway up"}, runner.runCalls)

	// Completion guidance and the reference footer are printed
	assert.Contains(t, out.String(), "Deployment complete")
	assert.Contains(t, out.String(), "railway logs")
	assert.Contains(t, out.String(), "railway status")
}

func TestFlowInitPrintsNextSteps(t *testing.T) {
	runner := &fakeRunner{}
	f, _, out := newTestFlow(t, runner, "y", "1")

	require.NoError(t, f.run())

	assert.Equal(t, []string{"railway init"}, runner.runCalls)
	assert.Contains(t, out.String(), "Next steps")
	assert.Contains(t, out.String(), "environment variables")
}

func TestFlowLinkChoice(t *testing.T) {
	runner := &fakeRunner{}
	f, _, out := newTestFlow(t, runner, "y", "2")

	require.NoError(t, f.run())

	assert.Equal(t, []string{"railway link"}, runner.runCalls)
	assert.Contains(t, out.String(), "Project linked")
}

func TestFlowInvalidChoice(t *testing.T) {
	tests := []string{"5", "abc", "", "0"}

	for _, choice := range tests {
		t.Run("choice "+choice, func(t *testing.T) {
			runner := &fakeRunner{}
			f, _, _ := newTestFlow(t, runner, "y", choice)

			err := f.run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid option")
			assert.Empty(t, runner.runCalls)
		})
	}
}

func TestFlowDeclinedConfirmation(t *testing.T) {
	// Only "y"/"Y" proceeds; everything else aborts before the menu
	tests := []string{"n", "yes", "Y ", ""}

	for _, answer := range tests {
		t.Run("answer "+answer, func(t *testing.T) {
			runner := &fakeRunner{}
			f, prompt, out := newTestFlow(t, runner, answer)

			err := f.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDeclined)

			// The menu was never reached
			assert.Len(t, prompt.asked, 1)
			assert.Empty(t, runner.runCalls)

			// The abort guidance includes the secret recipe
			assert.Contains(t, out.String(), "secrets.token_hex")
		})
	}
}

func TestFlowUppercaseConfirmAccepted(t *testing.T) {
	runner := &fakeRunner{}
	f, _, _ := newTestFlow(t, runner, "Y", "4")

	require.NoError(t, f.run())
}

func TestFlowMissingFilesListsAll(t *testing.T) {
	runner := &fakeRunner{}
	f, prompt, out := newTestFlow(t, runner)

	// Remove two of the four required files
	require.NoError(t, os.Remove(filepath.Join(f.dir, "app.py")))
	require.NoError(t, os.Remove(filepath.Join(f.dir, "runtime.txt")))

	err := f.run()
	require.Error(t, err)

	var missing *preflight.MissingFilesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"app.py", "runtime.txt"}, missing.Missing)

	// Both names appear in the console output
	assert.Contains(t, out.String(), "app.py")
	assert.Contains(t, out.String(), "runtime.txt")

	// The flow aborted before any prompt or dispatch
	assert.Empty(t, prompt.asked)
	assert.Empty(t, runner.runCalls)
}

func TestFlowToolMissingFailsFirst(t *testing.T) {
	runner := &fakeRunner{lookPathErr: errors.New("not found")}
	f, prompt, out := newTestFlow(t, runner)

	err := f.run()
	require.Error(t, err)
	assert.ErrorIs(t, err, preflight.ErrToolMissing)

	// Nothing else ran: no auth query, no prompts
	assert.Empty(t, runner.silentCalls)
	assert.Empty(t, runner.runCalls)
	assert.Empty(t, prompt.asked)

	// Install instructions are printed
	assert.Contains(t, out.String(), "npm install -g @railway/cli")
}

func TestFlowDelegatesToLoginWhenNotAuthenticated(t *testing.T) {
	runner := &fakeRunner{silentErr: errors.New("exit status 1")}
	f, _, _ := newTestFlow(t, runner, "y", "4")

	require.NoError(t, f.run())

	// whoami failed, so login was started; choice 4 then exited cleanly
	assert.Equal(t, []string{"railway whoami"}, runner.silentCalls)
	assert.Equal(t, []string{"railway login"}, runner.runCalls)
}

func TestFlowSkipConfirm(t *testing.T) {
	runner := &fakeRunner{}
	f, prompt, _ := newTestFlow(t, runner, "4")
	f.skipConfirm = true

	require.NoError(t, f.run())

	// Only the menu prompt was shown
	require.Len(t, prompt.asked, 1)
	assert.Contains(t, prompt.asked[0], "Select an option")
}

func TestFlowDeployFailurePropagates(t *testing.T) {
	wantErr := errors.New("exit status 1")
	runner := &fakeRunner{runErr: wantErr}
	f, _, _ := newTestFlow(t, runner, "y", "3")

	err := f.run()
	require.Error(t, err)

	// Delegated failure: the external tool's error is wrapped, not replaced
	assert.ErrorIs(t, err, wantErr)
	assert.Contains(t, err.Error(), "railway up failed")
}
