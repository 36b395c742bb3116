// Package cli wires the cobra command surface of the action: gather
// inputs, validate them, and drive the Jira create pipeline.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jiraops/jira-issue-action/pkg/constants"
)

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jira-issue-action",
		Short: "Create Jira issues from CI pipelines",
		Long: `Validate a set of issue inputs and create a Jira issue from them.

Inputs are read from the environment (INPUT_-prefixed variables win over
bare names, matching GitHub Actions conventions), optionally merged with
a YAML config file for local runs. Every input is validated before any
network traffic happens.`,
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewValidateCommand())
	return cmd
}

// DefaultArgs makes create the default subcommand: bare invocations and
// invocations that start with a create flag are rewritten to run create.
// Help and version requests are left alone.
func DefaultArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"create"}
	}
	first := args[0]
	switch first {
	case "-h", "--help", "-v", "--version", "help", "completion":
		return args
	}
	if strings.HasPrefix(first, "-") {
		return append([]string{"create"}, args...)
	}
	return args
}
