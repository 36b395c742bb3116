package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jiraops/jira-issue-action/pkg/cli"
	"github.com/jiraops/jira-issue-action/pkg/console"
	"github.com/jiraops/jira-issue-action/pkg/inputs"
	"github.com/jiraops/jira-issue-action/pkg/jira"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

func main() {
	root := cli.NewRootCommand()
	root.SetArgs(cli.DefaultArgs(os.Args[1:]))
	if err := root.Execute(); err != nil {
		console.NewPrinter(os.Stderr, console.LevelError).Errorf("%s", describe(err))
		os.Exit(1)
	}
}

// describe prefixes the terminal message with the failure class so CI
// logs show at a glance which stage went wrong.
func describe(err error) string {
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		return fmt.Sprintf("Validation failed: %v", valErr)
	}
	var cfgErr *inputs.ConfigurationError
	if errors.As(err, &cfgErr) {
		return fmt.Sprintf("Configuration problem: %v", cfgErr)
	}
	var connErr *jira.ConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf("Could not connect to Jira: %v", connErr)
	}
	var opErr *jira.OperationError
	if errors.As(err, &opErr) {
		return fmt.Sprintf("Jira operation failed: %v", opErr)
	}
	return err.Error()
}
