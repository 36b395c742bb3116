package inputs

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var fileLog = logger.New("inputs:file")

// fileInputs mirrors the YAML config file schema. Labels and attachment
// paths use the same comma-separated form as their environment variables.
type fileInputs struct {
	Server          string `yaml:"jira_server"`
	Username        string `yaml:"jira_username"`
	APIToken        string `yaml:"jira_api_token"`
	ProjectKey      string `yaml:"project_key"`
	IssueType       string `yaml:"issue_type"`
	Summary         string `yaml:"issue_summary"`
	Description     string `yaml:"issue_description"`
	Priority        string `yaml:"issue_priority"`
	ParentIssueKey  string `yaml:"parent_issue_key"`
	Assignee        string `yaml:"assignee"`
	Labels          string `yaml:"issue_labels"`
	AttachmentPaths string `yaml:"attachment_paths"`
	LogLevel        string `yaml:"log_level"`
}

// ApplyFile merges a YAML input file into the set. File values fill only
// fields the environment left empty, so environment variables always win.
// Intended for local runs; CI should configure the environment directly.
func (s *Set) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigurationError{Message: "cannot read config file " + path, Details: err.Error()}
	}

	var file fileInputs
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &ConfigurationError{Message: "cannot parse config file " + path, Details: err.Error()}
	}

	merge := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}
	merge(&s.Server, file.Server)
	merge(&s.Username, file.Username)
	merge(&s.APIToken, file.APIToken)
	merge(&s.ProjectKey, file.ProjectKey)
	merge(&s.IssueType, file.IssueType)
	merge(&s.Summary, file.Summary)
	merge(&s.Description, file.Description)
	merge(&s.Priority, file.Priority)
	merge(&s.ParentIssueKey, file.ParentIssueKey)
	merge(&s.Assignee, file.Assignee)
	merge(&s.Labels, file.Labels)
	merge(&s.AttachmentPaths, file.AttachmentPaths)
	merge(&s.LogLevel, file.LogLevel)

	fileLog.Printf("Merged config file %s", path)
	return nil
}
