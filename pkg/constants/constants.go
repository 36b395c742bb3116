// Package constants centralizes field limits, closed value sets, and
// environment variable names shared across the action.
package constants

// Version is the release version of the action binary.
const Version = "2.0.0"

// UserAgent is sent on every Jira API request.
const UserAgent = "jira-issue-action/" + Version

// Field length limits enforced by the validation layer. These mirror the
// limits Jira itself applies server-side, so rejected input never reaches
// the wire.
const (
	MaxProjectKeyLength  = 10
	MaxSummaryLength     = 255
	MaxDescriptionLength = 32767
	MaxUsernameLength    = 254
	MaxLabelLength       = 255
	MinTokenLength       = 20

	// MaxAttachmentSize is the per-file attachment limit (10 MiB).
	MaxAttachmentSize = 10 * 1024 * 1024
)

// ValidIssueTypes is the closed set of accepted issue types, exact case.
var ValidIssueTypes = []string{"Task", "Bug", "Story", "Sub-task", "Epic"}

// SubTaskIssueType is the issue type that mandates a parent issue key.
const SubTaskIssueType = "Sub-task"

// ValidPriorities is the closed set of accepted priorities, exact case.
var ValidPriorities = []string{"Highest", "High", "Medium", "Low", "Lowest"}

// PlaceholderTokens are values that are obviously not real API tokens.
// Matched case-insensitively.
var PlaceholderTokens = []string{"password", "token", "secret", "key"}

// Environment variable names for action inputs. Each is also honored with
// an "INPUT_" prefix, which takes precedence (GitHub Actions forwards
// action inputs that way).
const (
	EnvJiraServer       = "JIRA_SERVER"
	EnvJiraUsername     = "JIRA_USERNAME"
	EnvJiraAPIToken     = "JIRA_API_TOKEN"
	EnvProjectKey       = "PROJECT_KEY"
	EnvIssueType        = "ISSUE_TYPE"
	EnvIssueSummary     = "ISSUE_SUMMARY"
	EnvIssueDescription = "ISSUE_DESCRIPTION"
	EnvIssuePriority    = "ISSUE_PRIORITY"
	EnvParentIssueKey   = "PARENT_ISSUE_KEY"
	EnvAssignee         = "ASSIGNEE"
	EnvIssueLabels      = "ISSUE_LABELS"
	EnvAttachmentPaths  = "ATTACHMENT_PATHS"
	EnvLogLevel         = "LOG_LEVEL"
)

// GitHub Actions reporting files are named by these environment variables.
const (
	EnvGitHubOutput      = "GITHUB_OUTPUT"
	EnvGitHubStepSummary = "GITHUB_STEP_SUMMARY"
)
