//go:build !integration

package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JIRA_SERVER", "https://company.atlassian.net")
	t.Setenv("JIRA_USERNAME", "dev@example.com")
	t.Setenv("JIRA_API_TOKEN", "abcdefghij0123456789")
	t.Setenv("PROJECT_KEY", "PROJ")
	t.Setenv("ISSUE_TYPE", "Task")
	t.Setenv("ISSUE_SUMMARY", "Fix checkout crash")
	t.Setenv("ISSUE_DESCRIPTION", "Crash on empty cart.")
	t.Setenv("ISSUE_PRIORITY", "High")
}

func TestFromEnvironment(t *testing.T) {
	t.Run("reads all fields", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ISSUE_LABELS", "bug,frontend")
		t.Setenv("ASSIGNEE", "jdoe")
		t.Setenv("LOG_LEVEL", "DEBUG")

		set := FromEnvironment()
		assert.Equal(t, "https://company.atlassian.net", set.Server)
		assert.Equal(t, "PROJ", set.ProjectKey)
		assert.Equal(t, "bug,frontend", set.Labels)
		assert.Equal(t, "jdoe", set.Assignee)
		assert.Equal(t, "DEBUG", set.LogLevel)
		assert.NoError(t, set.CheckRequired())
	})

	t.Run("INPUT_ prefix wins over bare name", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("INPUT_ISSUE_SUMMARY", "From action input")

		set := FromEnvironment()
		assert.Equal(t, "From action input", set.Summary)
	})
}

func TestCheckRequired(t *testing.T) {
	t.Run("missing server reported first", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JIRA_SERVER", "")

		set := FromEnvironment()
		err := set.CheckRequired()
		require.Error(t, err)

		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Message, "JIRA_SERVER")
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		setRequiredEnv(t)
		set := FromEnvironment()
		assert.NoError(t, set.CheckRequired())
		assert.Empty(t, set.ParentIssueKey)
		assert.Empty(t, set.AttachmentPaths)
	})
}

func TestApplyFile(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "issue.yml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("file fills empty fields", func(t *testing.T) {
		path := writeConfig(t, `
jira_server: https://local.jira
project_key: DEV
issue_labels: ci,local
log_level: DEBUG
`)
		set := &Set{}
		require.NoError(t, set.ApplyFile(path))
		assert.Equal(t, "https://local.jira", set.Server)
		assert.Equal(t, "DEV", set.ProjectKey)
		assert.Equal(t, "ci,local", set.Labels)
		assert.Equal(t, "DEBUG", set.LogLevel)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		setRequiredEnv(t)
		path := writeConfig(t, "jira_server: https://file.jira\n")

		set := FromEnvironment()
		require.NoError(t, set.ApplyFile(path))
		assert.Equal(t, "https://company.atlassian.net", set.Server)
	})

	t.Run("missing file is a configuration error", func(t *testing.T) {
		set := &Set{}
		err := set.ApplyFile(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)

		var cerr *ConfigurationError
		assert.ErrorAs(t, err, &cerr)
	})

	t.Run("malformed yaml is a configuration error", func(t *testing.T) {
		path := writeConfig(t, "jira_server: [unclosed\n")
		set := &Set{}
		err := set.ApplyFile(path)
		require.Error(t, err)

		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr)
		assert.Contains(t, cerr.Message, "parse")
	})
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Message: "bad config"}
	assert.Equal(t, "bad config", err.Error())

	withDetails := &ConfigurationError{Message: "bad config", Details: "line 3"}
	assert.Equal(t, "bad config (line 3)", withDetails.Error())
}
