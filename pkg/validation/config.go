package validation

import (
	"strings"

	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var configLog = logger.New("validation:config")

// RawInputs holds the unvalidated string inputs as received from the
// environment. Absent optional fields are empty strings; no coercion
// happens before validation.
type RawInputs struct {
	Server          string
	Username        string
	APIToken        string
	ProjectKey      string
	IssueType       string
	Summary         string
	Description     string
	Priority        string
	ParentIssueKey  string
	Assignee        string
	Labels          string
	AttachmentPaths string
}

// IssueConfig is the sole data product of the validation layer. Once
// constructed it satisfies every field constraint, so downstream code
// performs no further sanitization. Treat it as read-only: it is built
// once per invocation and discarded at process exit.
type IssueConfig struct {
	Server          string
	Username        string
	APIToken        string
	ProjectKey      string
	IssueType       string
	Summary         string
	Description     string
	Priority        string
	ParentIssueKey  string // empty means absent
	Assignee        string // empty means absent
	Labels          []string
	AttachmentPaths []string
}

// IsSubTask reports whether the configured issue type mandates a parent.
func (c *IssueConfig) IsSubTask() bool {
	return c.IssueType == constants.SubTaskIssueType
}

// ValidateInputs runs every field validator over the raw inputs and then
// the cross-field rule (a Sub-task requires a parent issue key), failing
// fast at the first offending field.
func ValidateInputs(raw RawInputs) (*IssueConfig, error) {
	configLog.Print("Validating input parameters")

	cfg := &IssueConfig{}
	var err error

	if cfg.Server, err = ValidateURL(raw.Server); err != nil {
		return nil, err
	}
	if cfg.Username, err = ValidateUsername(raw.Username, "jira_username"); err != nil {
		return nil, err
	}
	if cfg.APIToken, err = ValidateToken(raw.APIToken); err != nil {
		return nil, err
	}
	if cfg.ProjectKey, err = ValidateProjectKey(raw.ProjectKey); err != nil {
		return nil, err
	}
	if cfg.IssueType, err = ValidateIssueType(raw.IssueType); err != nil {
		return nil, err
	}
	if cfg.Summary, err = ValidateSummary(raw.Summary); err != nil {
		return nil, err
	}
	if cfg.Description, err = ValidateDescription(raw.Description); err != nil {
		return nil, err
	}
	if cfg.Priority, err = ValidatePriority(raw.Priority); err != nil {
		return nil, err
	}
	if cfg.ParentIssueKey, err = ValidateParentIssueKey(raw.ParentIssueKey); err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw.Assignee) != "" {
		if cfg.Assignee, err = ValidateUsername(raw.Assignee, "assignee"); err != nil {
			return nil, err
		}
	}
	if cfg.Labels, err = ValidateLabels(raw.Labels); err != nil {
		return nil, err
	}
	if cfg.AttachmentPaths, err = ValidateAttachmentPaths(raw.AttachmentPaths); err != nil {
		return nil, err
	}

	if cfg.IsSubTask() && cfg.ParentIssueKey == "" {
		return nil, newError("parent_issue_key", "parent issue key is required for Sub-task type")
	}

	configLog.Printf("Configuration validated: project=%s type=%s labels=%d attachments=%d",
		cfg.ProjectKey, cfg.IssueType, len(cfg.Labels), len(cfg.AttachmentPaths))
	return cfg, nil
}
