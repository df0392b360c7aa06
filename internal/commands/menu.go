package commands

import (
	"github.com/manifoldco/promptui"
)

// Action is the operator's menu selection, parsed into a typed value so the
// dispatch below is an exhaustive switch rather than stringly-typed cases
type Action int

const (
	// ActionInvalid is any input outside the menu range
	ActionInvalid Action = iota

	// ActionInit creates a new Railway project (menu choice 1)
	ActionInit

	// ActionLink links to an existing Railway project (menu choice 2)
	ActionLink

	// ActionDeploy deploys the working directory (menu choice 3)
	ActionDeploy

	// ActionExit leaves without doing anything (menu choice 4)
	ActionExit
)

// String returns a human-readable name for the action
// Mostly useful in verbose output and test failure messages
func (a Action) String() string {
	switch a {
	case ActionInit:
		return "init"
	case ActionLink:
		return "link"
	case ActionDeploy:
		return "deploy"
	case ActionExit:
		return "exit"
	default:
		return "invalid"
	}
}

// ParseAction maps the raw menu input to an Action
// The match is exact: no trimming, no prefix matching. "3" deploys,
// " 3", "03" and "abc" are all invalid.
func ParseAction(input string) Action {
	switch input {
	case "1":
		return ActionInit
	case "2":
		return ActionLink
	case "3":
		return ActionDeploy
	case "4":
		return ActionExit
	default:
		return ActionInvalid
	}
}

// ParseConfirm reports whether the raw confirmation input means "yes"
// This is a strict allow-list: only exactly "y" or "Y" proceeds.
// "yes", "Y " and an empty answer all count as "no", because the prompt
// gates a production deployment and the safe default is to stop.
func ParseConfirm(input string) bool {
	return input == "y" || input == "Y"
}

// Prompter asks the operator for a line of input
// Abstracted behind an interface so the interactive flow can be driven by
// scripted answers in tests.
type Prompter interface {
	// Input displays the label and returns the operator's raw answer
	// (without the trailing newline)
	Input(label string) (string, error)
}

// terminalPrompter is the production Prompter backed by promptui
type terminalPrompter struct{}

// NewTerminalPrompter creates a Prompter that reads from the terminal
func NewTerminalPrompter() Prompter {
	return &terminalPrompter{}
}

// Input prompts on the terminal and returns the raw typed answer
func (p *terminalPrompter) Input(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}
