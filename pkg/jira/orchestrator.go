package jira

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/jiraops/jira-issue-action/pkg/console"
	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/fileutil"
	"github.com/jiraops/jira-issue-action/pkg/logger"
	"github.com/jiraops/jira-issue-action/pkg/stringutil"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

var orchestratorLog = logger.New("jira:orchestrator")

// API is the slice of client behavior the orchestrator depends on.
type API interface {
	FindUser(ctx context.Context, property string) (*gojira.User, error)
	GetIssue(ctx context.Context, key string) (*gojira.Issue, error)
	CreateIssue(ctx context.Context, issue *gojira.Issue) (string, error)
	AddAttachment(ctx context.Context, issueKey, filename string, r io.Reader) error
}

// Orchestrator drives the create pipeline against a connected client:
// resolve the assignee (best effort), verify the parent for sub-tasks
// (fatal), create the issue, then upload attachments (best effort).
type Orchestrator struct {
	api     API
	printer *console.Printer
}

func NewOrchestrator(api API, printer *console.Printer) *Orchestrator {
	return &Orchestrator{api: api, printer: printer}
}

// Submit runs the pipeline for one validated configuration and returns
// the created issue key.
func (o *Orchestrator) Submit(ctx context.Context, cfg *validation.IssueConfig) (string, error) {
	assignee, err := o.resolveAssignee(ctx, cfg)
	if err != nil {
		return "", err
	}

	if cfg.IsSubTask() {
		parent, err := o.api.GetIssue(ctx, cfg.ParentIssueKey)
		if err != nil {
			return "", err
		}
		o.printer.Infof("Parent issue %s verified: %s", cfg.ParentIssueKey, stringutil.Truncate(parent.Fields.Summary, 50))
	}

	issueKey, err := o.api.CreateIssue(ctx, buildIssue(cfg, assignee))
	if err != nil {
		return "", err
	}
	o.printer.Successf("Created issue %s: %s", issueKey, stringutil.Truncate(cfg.Summary, 50))

	o.attachFiles(ctx, issueKey, cfg.AttachmentPaths)
	return issueKey, nil
}

// resolveAssignee looks up the configured assignee. Lookup failures and
// empty results never abort the pipeline; the issue is created unassigned.
func (o *Orchestrator) resolveAssignee(ctx context.Context, cfg *validation.IssueConfig) (*gojira.User, error) {
	if cfg.Assignee == "" {
		return nil, nil
	}
	user, err := o.api.FindUser(ctx, cfg.Assignee)
	if err != nil {
		o.printer.Warnf("Assignee lookup for %q failed, issue will be unassigned: %v", cfg.Assignee, err)
		return nil, nil
	}
	if user == nil {
		o.printer.Warnf("Assignee %q not found, issue will be unassigned", cfg.Assignee)
		return nil, nil
	}
	orchestratorLog.Printf("assignee %q resolved to %s", cfg.Assignee, user.DisplayName)
	return user, nil
}

func buildIssue(cfg *validation.IssueConfig, assignee *gojira.User) *gojira.Issue {
	fields := &gojira.IssueFields{
		Project:     gojira.Project{Key: cfg.ProjectKey},
		Type:        gojira.IssueType{Name: cfg.IssueType},
		Summary:     cfg.Summary,
		Description: cfg.Description,
		Priority:    &gojira.Priority{Name: cfg.Priority},
	}
	if len(cfg.Labels) > 0 {
		fields.Labels = cfg.Labels
	}
	if assignee != nil {
		fields.Assignee = assignee
	}
	if cfg.IsSubTask() {
		fields.Parent = &gojira.Parent{Key: cfg.ParentIssueKey}
	}
	return &gojira.Issue{Fields: fields}
}

// attachFiles uploads each attachment in order. Files are re-checked on
// disk right before upload since validation may have run much earlier.
// Every failure is reported as a warning and the rest still upload.
func (o *Orchestrator) attachFiles(ctx context.Context, issueKey string, paths []string) {
	if len(paths) == 0 {
		return
	}
	var failures []*AttachmentError
	attached := 0
	for _, path := range paths {
		if err := o.attachOne(ctx, issueKey, path); err != nil {
			failures = append(failures, err)
			continue
		}
		attached++
	}
	if attached > 0 {
		o.printer.Infof("Attached %d file(s) to %s", attached, issueKey)
	}
	for _, failure := range failures {
		o.printer.Warnf("%v", failure)
	}
	if len(failures) > 0 {
		names := make([]string, 0, len(failures))
		for _, failure := range failures {
			names = append(names, filepath.Base(failure.Path))
		}
		o.printer.Warnf("%d attachment(s) could not be uploaded: %s", len(failures), strings.Join(names, ", "))
	}
}

func (o *Orchestrator) attachOne(ctx context.Context, issueKey, path string) *AttachmentError {
	if err := fileutil.CheckAttachmentFile(path, constants.MaxAttachmentSize); err != nil {
		return &AttachmentError{Path: path, Message: err.Error()}
	}
	f, err := os.Open(path)
	if err != nil {
		return &AttachmentError{Path: path, Message: err.Error()}
	}
	defer f.Close()
	if err := o.api.AddAttachment(ctx, issueKey, filepath.Base(path), f); err != nil {
		return &AttachmentError{Path: path, Message: err.Error()}
	}
	orchestratorLog.Printf("attached %s to %s", path, issueKey)
	return nil
}
