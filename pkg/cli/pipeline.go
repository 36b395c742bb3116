package cli

import (
	"os"
	"strings"

	"github.com/jiraops/jira-issue-action/pkg/console"
	"github.com/jiraops/jira-issue-action/pkg/inputs"
	"github.com/jiraops/jira-issue-action/pkg/logger"
	"github.com/jiraops/jira-issue-action/pkg/stringutil"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

var pipelineLog = logger.New("cli:pipeline")

// pipelineOptions are the flag values shared by the create and validate
// commands.
type pipelineOptions struct {
	configPath  string
	interactive bool
	logLevel    string
}

// newPrinter builds the user-facing printer. The --log-level flag wins
// over the LOG_LEVEL input; both fall back to INFO when unset.
func newPrinter(opts pipelineOptions, set *inputs.Set) *console.Printer {
	level := set.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	return console.NewPrinter(os.Stderr, console.ParseLevel(level))
}

// resolveConfig runs the input pipeline up to a validated configuration:
// environment, optional config file, optional interactive prompts,
// presence check, then full validation.
func resolveConfig(opts pipelineOptions) (*validation.IssueConfig, *inputs.Set, error) {
	set := inputs.FromEnvironment()

	if opts.configPath != "" {
		pipelineLog.Printf("merging config file %s", opts.configPath)
		if err := set.ApplyFile(opts.configPath); err != nil {
			return nil, set, err
		}
	}

	if opts.interactive {
		if err := promptMissing(set); err != nil {
			return nil, set, err
		}
	}

	if err := set.CheckRequired(); err != nil {
		return nil, set, err
	}

	cfg, err := validation.ValidateInputs(set.RawInputs)
	if err != nil {
		return nil, set, err
	}
	return cfg, set, nil
}

// configSummary renders the validated configuration with the token masked.
func configSummary(cfg *validation.IssueConfig) string {
	return console.RenderKeyValues("Issue configuration", []console.KV{
		{Key: "Server", Value: cfg.Server},
		{Key: "Username", Value: cfg.Username},
		{Key: "API token", Value: stringutil.MaskSecret(cfg.APIToken)},
		{Key: "Project", Value: cfg.ProjectKey},
		{Key: "Type", Value: cfg.IssueType},
		{Key: "Summary", Value: stringutil.Truncate(cfg.Summary, 50)},
		{Key: "Description", Value: stringutil.Truncate(cfg.Description, 50)},
		{Key: "Priority", Value: cfg.Priority},
		{Key: "Parent", Value: cfg.ParentIssueKey},
		{Key: "Assignee", Value: cfg.Assignee},
		{Key: "Labels", Value: strings.Join(cfg.Labels, ", ")},
		{Key: "Attachments", Value: strings.Join(cfg.AttachmentPaths, ", ")},
	})
}
