// Package validation is the input validation and sanitization layer of the
// action. It turns raw string inputs into normalized, policy-compliant
// values, rejecting malformed, oversized, or injection-bearing input before
// anything reaches the Jira API or the local filesystem.
//
// All validators are free functions over a single input. They share no
// state, so they can be unit tested independently and evaluated in any
// order; only the cross-field rule in ValidateInputs depends on more than
// one field.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/fileutil"
	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var fieldsLog = logger.New("validation:fields")

// Error is a validation failure scoped to a single input field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newError(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var (
	projectKeyRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	issueKeyRegex   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*-\d+$`)
	usernameRegex   = regexp.MustCompile(`^[a-zA-Z0-9@._-]+$`)
	labelRegex      = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateURL validates and normalizes the Jira server URL: http or https
// scheme, a non-empty host, no dangerous content, no trailing slash.
// The result is stable under re-validation.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newError("jira_server", "server URL cannot be empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", newError("jira_server", "malformed URL: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", newError("jira_server", "URL must use the http or https scheme")
	}
	if parsed.Host == "" {
		return "", newError("jira_server", "URL is missing a hostname")
	}

	if err := CheckDangerousContent(trimmed, "jira_server"); err != nil {
		return "", err
	}

	return strings.TrimRight(trimmed, "/"), nil
}

// ValidateProjectKey validates and upper-cases a Jira project key.
func ValidateProjectKey(raw string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return "", newError("project_key", "project key cannot be empty")
	}
	if !projectKeyRegex.MatchString(key) {
		return "", newError("project_key", "project key must start with a letter and contain only uppercase letters, numbers, and underscores")
	}
	if len(key) > constants.MaxProjectKeyLength {
		return "", newError("project_key", "project key cannot exceed %d characters", constants.MaxProjectKeyLength)
	}
	return key, nil
}

// ValidateIssueType requires membership in the closed issue type set,
// exact case. No normalization beyond trimming.
func ValidateIssueType(raw string) (string, error) {
	issueType := strings.TrimSpace(raw)
	if issueType == "" {
		return "", newError("issue_type", "issue type cannot be empty")
	}
	if !slices.Contains(constants.ValidIssueTypes, issueType) {
		return "", newError("issue_type", "issue type %q is not supported, valid types: %s",
			issueType, strings.Join(constants.ValidIssueTypes, ", "))
	}
	return issueType, nil
}

// ValidatePriority requires membership in the closed priority set,
// exact case. No normalization beyond trimming.
func ValidatePriority(raw string) (string, error) {
	priority := strings.TrimSpace(raw)
	if priority == "" {
		return "", newError("issue_priority", "priority cannot be empty")
	}
	if !slices.Contains(constants.ValidPriorities, priority) {
		return "", newError("issue_priority", "priority %q is not supported, valid priorities: %s",
			priority, strings.Join(constants.ValidPriorities, ", "))
	}
	return priority, nil
}

// ValidateSummary validates the issue summary: 1-255 characters, no control
// characters besides tab, LF, and CR, no dangerous content.
func ValidateSummary(raw string) (string, error) {
	summary := strings.TrimSpace(raw)
	if summary == "" {
		return "", newError("summary", "summary cannot be empty")
	}
	if utf8.RuneCountInString(summary) > constants.MaxSummaryLength {
		return "", newError("summary", "summary cannot exceed %d characters", constants.MaxSummaryLength)
	}
	for _, r := range summary {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return "", newError("summary", "summary contains invalid control characters")
		}
	}
	if err := CheckDangerousContent(summary, "summary"); err != nil {
		return "", err
	}
	return summary, nil
}

// ValidateDescription validates the issue description: 1-32767 characters,
// no dangerous content.
func ValidateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", newError("description", "description cannot be empty")
	}
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLength {
		return "", newError("description", "description cannot exceed %d characters", constants.MaxDescriptionLength)
	}
	if err := CheckDangerousContent(description, "description"); err != nil {
		return "", err
	}
	return description, nil
}

// ValidateUsername validates a Jira username or email address. The same
// rule applies to the assignee field.
func ValidateUsername(raw, field string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", newError(field, "username cannot be empty")
	}
	if !usernameRegex.MatchString(username) {
		return "", newError(field, "username contains invalid characters")
	}
	if utf8.RuneCountInString(username) > constants.MaxUsernameLength {
		return "", newError(field, "username cannot exceed %d characters", constants.MaxUsernameLength)
	}
	if err := CheckDangerousContent(username, field); err != nil {
		return "", err
	}
	return username, nil
}

// ValidateToken validates the API token: minimum length and a placeholder
// blocklist. The dangerous-content scan is deliberately skipped here since
// real tokens may contain symbols from the signature set; length and
// placeholder checks are the only defense.
func ValidateToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", newError("api_token", "API token cannot be empty")
	}
	if len(token) < constants.MinTokenLength {
		return "", newError("api_token", "API token appears to be too short (minimum %d characters)", constants.MinTokenLength)
	}
	if slices.Contains(constants.PlaceholderTokens, strings.ToLower(token)) {
		return "", newError("api_token", "API token appears to be a placeholder")
	}
	return token, nil
}

// ValidateParentIssueKey validates an optional parent issue key. An empty
// or whitespace-only value produces absence, not an error; anything else
// must match the PROJECT-123 key format after trimming and upper-casing.
func ValidateParentIssueKey(raw string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return "", nil
	}
	if !issueKeyRegex.MatchString(key) {
		return "", newError("parent_issue_key", "parent issue key must be in format PROJECT-123 (e.g. PROJ-123)")
	}
	return key, nil
}

// ValidateLabels parses a comma-separated label list: tokens are trimmed,
// empties dropped, order preserved, no de-duplication. Each surviving label
// must be within the length limit, contain no spaces, match the label
// charset, and pass the dangerous-content scan.
func ValidateLabels(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var labels []string
	for _, token := range strings.Split(raw, ",") {
		label := strings.TrimSpace(token)
		if label == "" {
			continue
		}
		if utf8.RuneCountInString(label) > constants.MaxLabelLength {
			return nil, newError("labels", "label %q cannot exceed %d characters", label, constants.MaxLabelLength)
		}
		if strings.Contains(label, " ") {
			return nil, newError("labels", "label %q cannot contain spaces", label)
		}
		if !labelRegex.MatchString(label) {
			return nil, newError("labels", "label %q contains invalid characters", label)
		}
		if err := CheckDangerousContent(label, fmt.Sprintf("label %q", label)); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	fieldsLog.Printf("Validated %d label(s)", len(labels))
	return labels, nil
}

// ValidateAttachmentPaths parses a comma-separated path list and checks
// each entry against path-traversal rules and the filesystem: the path must
// be relative with no ".." component, name an existing regular readable
// file, and stay within the attachment size limit. The first failure aborts
// with no partial list.
//
// The traversal guard rejects every absolute path, including legitimate
// ones. That is intentionally conservative and preserved as-is.
func ValidateAttachmentPaths(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var paths []string
	for _, token := range strings.Split(raw, ",") {
		path := strings.TrimSpace(token)
		if path == "" {
			continue
		}
		if strings.Contains(path, "..") || strings.HasPrefix(path, "/") {
			return nil, newError("attachment_paths", "invalid file path %q: potential security risk", path)
		}
		if err := fileutil.CheckAttachmentFile(path, constants.MaxAttachmentSize); err != nil {
			return nil, &Error{Field: "attachment_paths", Reason: err.Error()}
		}
		paths = append(paths, path)
	}
	fieldsLog.Printf("Validated %d attachment path(s)", len(paths))
	return paths, nil
}
