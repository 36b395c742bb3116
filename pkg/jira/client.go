package jira

import (
	"context"
	"io"
	"net/http"
	"time"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/logger"
	"github.com/jiraops/jira-issue-action/pkg/stringutil"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

var clientLog = logger.New("jira:client")

const requestTimeout = 30 * time.Second

// userAgentTransport stamps every outgoing request with the action's
// User-Agent before handing off to the next round tripper.
type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", constants.UserAgent)
	return t.next.RoundTrip(req)
}

// Client is an authenticated session against one Jira server.
type Client struct {
	jira   *gojira.Client
	server string
}

// NewClient builds a basic-auth client for the configured server. No
// network traffic happens here; call Connect to verify credentials.
func NewClient(cfg *validation.IssueConfig) (*Client, error) {
	transport := &gojira.BasicAuthTransport{
		Username:  cfg.Username,
		Password:  cfg.APIToken,
		Transport: &userAgentTransport{next: http.DefaultTransport},
	}
	httpClient := transport.Client()
	httpClient.Timeout = requestTimeout

	inner, err := gojira.NewClient(httpClient, cfg.Server)
	if err != nil {
		return nil, &ConnectionError{Message: "invalid Jira server URL", Details: err.Error()}
	}
	clientLog.Printf("client ready for %s as %s (token %s)", cfg.Server, cfg.Username, stringutil.MaskSecret(cfg.APIToken))
	return &Client{jira: inner, server: cfg.Server}, nil
}

// Connect verifies the session by fetching the authenticated user.
func (c *Client) Connect(ctx context.Context) error {
	me, resp, err := c.jira.User.GetSelfWithContext(ctx)
	if err != nil {
		return newConnectionError(resp, err)
	}
	clientLog.Printf("connected to %s as %s", c.server, me.DisplayName)
	return nil
}

// FindUser resolves a username or email to a Jira account. A nil user
// with a nil error means the search succeeded but matched nobody.
func (c *Client) FindUser(ctx context.Context, property string) (*gojira.User, error) {
	users, resp, err := c.jira.User.FindWithContext(ctx, property)
	if err != nil {
		return nil, newOperationError(resp, err, "user lookup")
	}
	if len(users) == 0 {
		return nil, nil
	}
	clientLog.Printf("resolved %q to account %s", property, users[0].DisplayName)
	return &users[0], nil
}

// GetIssue fetches an existing issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*gojira.Issue, error) {
	issue, resp, err := c.jira.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return nil, newOperationError(resp, err, "parent issue lookup")
	}
	return issue, nil
}

// CreateIssue submits a new issue and returns its key.
func (c *Client) CreateIssue(ctx context.Context, issue *gojira.Issue) (string, error) {
	created, resp, err := c.jira.Issue.CreateWithContext(ctx, issue)
	if err != nil {
		return "", newOperationError(resp, err, "issue creation")
	}
	clientLog.Printf("created issue %s", created.Key)
	return created.Key, nil
}

// AddAttachment uploads one file to an existing issue.
func (c *Client) AddAttachment(ctx context.Context, issueKey, filename string, r io.Reader) error {
	_, resp, err := c.jira.Issue.PostAttachmentWithContext(ctx, issueKey, r, filename)
	if err != nil {
		return newOperationError(resp, err, "attachment upload")
	}
	return nil
}

// IssueURL renders the browse URL for an issue key on this server.
func (c *Client) IssueURL(issueKey string) string {
	return c.server + "/browse/" + issueKey
}
