//go:build !integration

package jira

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/stretchr/testify/assert"
)

func responseWithStatus(code int) *gojira.Response {
	return &gojira.Response{Response: &http.Response{StatusCode: code}}
}

func TestNewConnectionError(t *testing.T) {
	tests := []struct {
		name        string
		resp        *gojira.Response
		wantMessage string
	}{
		{
			name:        "unauthorized",
			resp:        responseWithStatus(401),
			wantMessage: "authentication failed, check your username and API token",
		},
		{
			name:        "forbidden",
			resp:        responseWithStatus(403),
			wantMessage: "access forbidden, your account may not have permission to access this Jira instance",
		},
		{
			name:        "not found",
			resp:        responseWithStatus(404),
			wantMessage: "Jira server not found, verify the server URL",
		},
		{
			name:        "rate limited",
			resp:        responseWithStatus(429),
			wantMessage: "rate limit exceeded, try again later",
		},
		{
			name:        "internal error",
			resp:        responseWithStatus(500),
			wantMessage: "Jira server internal error, try again later or contact your administrator",
		},
		{
			name:        "bad gateway",
			resp:        responseWithStatus(502),
			wantMessage: "bad gateway, there may be network connectivity issues",
		},
		{
			name:        "service unavailable",
			resp:        responseWithStatus(503),
			wantMessage: "Jira service unavailable, the server may be under maintenance",
		},
		{
			name:        "gateway timeout",
			resp:        responseWithStatus(504),
			wantMessage: "gateway timeout, the request took too long to complete",
		},
		{
			name:        "unmapped status",
			resp:        responseWithStatus(418),
			wantMessage: "connection to Jira failed",
		},
		{
			name:        "no response at all",
			resp:        nil,
			wantMessage: "connection to Jira failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connErr := newConnectionError(tt.resp, errors.New("boom"))
			assert.Equal(t, tt.wantMessage, connErr.Message)
			assert.Contains(t, connErr.Details, "boom")
			assert.Contains(t, connErr.Error(), tt.wantMessage)
		})
	}
}

func TestNewOperationError(t *testing.T) {
	tests := []struct {
		name        string
		resp        *gojira.Response
		wantMessage string
	}{
		{
			name:        "bad request",
			resp:        responseWithStatus(400),
			wantMessage: "bad request for issue creation, check your input parameters",
		},
		{
			name:        "unauthorized",
			resp:        responseWithStatus(401),
			wantMessage: "authentication failed during issue creation",
		},
		{
			name:        "forbidden",
			resp:        responseWithStatus(403),
			wantMessage: "permission denied for issue creation, contact your Jira administrator",
		},
		{
			name:        "not found",
			resp:        responseWithStatus(404),
			wantMessage: "resource not found for issue creation, check project key, issue type, or parent issue",
		},
		{
			name:        "conflict",
			resp:        responseWithStatus(409),
			wantMessage: "conflict occurred during issue creation, the resource may already exist",
		},
		{
			name:        "unprocessable",
			resp:        responseWithStatus(422),
			wantMessage: "invalid input for issue creation, check required fields and field types",
		},
		{
			name:        "rate limited",
			resp:        responseWithStatus(429),
			wantMessage: "rate limit exceeded during issue creation, try again later",
		},
		{
			name:        "unmapped status",
			resp:        responseWithStatus(502),
			wantMessage: `operation "issue creation" failed`,
		},
		{
			name:        "no response at all",
			resp:        nil,
			wantMessage: `operation "issue creation" failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opErr := newOperationError(tt.resp, errors.New("boom"), "issue creation")
			assert.Equal(t, tt.wantMessage, opErr.Message)
			assert.Contains(t, opErr.Details, "boom")
		})
	}
}

func TestErrorDetailsCarryStatusCode(t *testing.T) {
	connErr := newConnectionError(responseWithStatus(503), errors.New("maintenance"))
	assert.Contains(t, connErr.Details, "HTTP 503")

	opErr := newOperationError(responseWithStatus(409), errors.New("dup"), "issue creation")
	assert.Contains(t, opErr.Details, "HTTP 409")
}

func TestAttachmentErrorMessage(t *testing.T) {
	attErr := &AttachmentError{Path: "/tmp/report.txt", Message: "attachment file not found"}
	assert.Equal(t, "failed to attach /tmp/report.txt: attachment file not found", attErr.Error())
}

func TestErrorWithoutDetails(t *testing.T) {
	connErr := &ConnectionError{Message: "invalid Jira server URL"}
	assert.Equal(t, "invalid Jira server URL", connErr.Error())

	opErr := &OperationError{Message: "permission denied for issue creation"}
	assert.Equal(t, "permission denied for issue creation", opErr.Error())
	assert.Equal(t, "permission denied for issue creation (no such project)",
		fmt.Sprintf("%v", &OperationError{Message: "permission denied for issue creation", Details: "no such project"}))
}
