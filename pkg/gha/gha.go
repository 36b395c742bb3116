// Package gha reports results back to GitHub Actions by appending to the
// files named by GITHUB_OUTPUT and GITHUB_STEP_SUMMARY. Both targets are
// best-effort: an unset variable or a failed write degrades to a warning
// at the caller, never a failure.
package gha

import (
	"fmt"
	"os"

	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var log = logger.New("gha:gha")

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return err
	}
	return nil
}

// SetOutput appends a name=value line to the GITHUB_OUTPUT file.
func SetOutput(name, value string) error {
	path := os.Getenv(constants.EnvGitHubOutput)
	if path == "" {
		return fmt.Errorf("%s environment variable not set", constants.EnvGitHubOutput)
	}
	if err := appendLine(path, fmt.Sprintf("%s=%s\n", name, value)); err != nil {
		return fmt.Errorf("failed to set output %s: %w", name, err)
	}
	log.Printf("Set output %s=%s", name, value)
	return nil
}

// AppendStepSummary appends a markdown line announcing the created issue
// to the GITHUB_STEP_SUMMARY file.
func AppendStepSummary(issueKey, issueURL string) error {
	path := os.Getenv(constants.EnvGitHubStepSummary)
	if path == "" {
		return fmt.Errorf("%s environment variable not set", constants.EnvGitHubStepSummary)
	}
	line := fmt.Sprintf("✅ **Jira Issue Created:** [%s](%s)\n\n", issueKey, issueURL)
	if err := appendLine(path, line); err != nil {
		return fmt.Errorf("failed to update step summary: %w", err)
	}
	log.Printf("Updated step summary with %s", issueKey)
	return nil
}
