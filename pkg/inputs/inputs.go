// Package inputs gathers the raw, unvalidated action inputs from the
// environment and, for local runs, an optional YAML file. It performs no
// validation beyond presence checks; everything else is the validation
// package's job.
package inputs

import (
	"fmt"

	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/envutil"
	"github.com/jiraops/jira-issue-action/pkg/logger"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

var inputsLog = logger.New("inputs:inputs")

// ConfigurationError reports construction-time misconfiguration: a missing
// required input or an unusable config file. It is raised before any
// validation or network activity.
type ConfigurationError struct {
	Message string
	Details string
}

func (e *ConfigurationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// Set holds the raw inputs plus process-level options that are not part of
// the issue configuration itself.
type Set struct {
	validation.RawInputs
	LogLevel string
}

// FromEnvironment reads every input from the environment. For each input
// the INPUT_-prefixed variable wins over the bare name. Presence of
// required inputs is checked later by CheckRequired, after any config file
// has been merged in.
func FromEnvironment() *Set {
	set := &Set{
		RawInputs: validation.RawInputs{
			Server:          envutil.GetInput(constants.EnvJiraServer),
			Username:        envutil.GetInput(constants.EnvJiraUsername),
			APIToken:        envutil.GetInput(constants.EnvJiraAPIToken),
			ProjectKey:      envutil.GetInput(constants.EnvProjectKey),
			IssueType:       envutil.GetInput(constants.EnvIssueType),
			Summary:         envutil.GetInput(constants.EnvIssueSummary),
			Description:     envutil.GetInput(constants.EnvIssueDescription),
			Priority:        envutil.GetInput(constants.EnvIssuePriority),
			ParentIssueKey:  envutil.GetInput(constants.EnvParentIssueKey),
			Assignee:        envutil.GetInput(constants.EnvAssignee),
			Labels:          envutil.GetInput(constants.EnvIssueLabels),
			AttachmentPaths: envutil.GetInput(constants.EnvAttachmentPaths),
		},
		// Empty means default; console.ParseLevel falls back to INFO.
		LogLevel: envutil.GetInput(constants.EnvLogLevel),
	}
	inputsLog.Print("Gathered inputs from environment")
	return set
}

// requiredInput names one mandatory field and where to read it from.
type requiredInput struct {
	envName string
	value   func(*Set) string
}

var requiredInputs = []requiredInput{
	{constants.EnvJiraServer, func(s *Set) string { return s.Server }},
	{constants.EnvJiraUsername, func(s *Set) string { return s.Username }},
	{constants.EnvJiraAPIToken, func(s *Set) string { return s.APIToken }},
	{constants.EnvProjectKey, func(s *Set) string { return s.ProjectKey }},
	{constants.EnvIssueType, func(s *Set) string { return s.IssueType }},
	{constants.EnvIssueSummary, func(s *Set) string { return s.Summary }},
	{constants.EnvIssueDescription, func(s *Set) string { return s.Description }},
	{constants.EnvIssuePriority, func(s *Set) string { return s.Priority }},
}

// CheckRequired verifies that every mandatory input has a value, from
// whichever source. The first missing input aborts.
func (s *Set) CheckRequired() error {
	for _, req := range requiredInputs {
		if req.value(s) == "" {
			return &ConfigurationError{
				Message: fmt.Sprintf("required input %s is not set", req.envName),
			}
		}
	}
	return nil
}
