package jira

import (
	"fmt"

	gojira "github.com/andygrunwald/go-jira"
)

// The error taxonomy of the action: connection errors (cannot establish or
// authenticate a session, always fatal), operation errors (the remote
// rejected a create or lookup; fatal for create and parent lookup,
// best-effort for assignee lookup), and attachment errors (always
// downgraded to warnings by the orchestrator). Each carries a short
// operator-facing message plus optional raw details for diagnostic logging.

// ConnectionError means a session could not be established or verified.
type ConnectionError struct {
	Message string
	Details string
}

func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// OperationError means the remote service rejected an issue operation.
type OperationError struct {
	Message string
	Details string
}

func (e *OperationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// AttachmentError is an attachment-specific failure. Current policy never
// propagates these: the orchestrator collects and logs them as warnings.
type AttachmentError struct {
	Path    string
	Message string
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("failed to attach %s: %s", e.Path, e.Message)
}

// connectionErrorMessages maps a remote status code to a connection-class
// message. Unmapped codes fall through to a generic message carrying the
// raw status and error text.
var connectionErrorMessages = map[int]string{
	401: "authentication failed, check your username and API token",
	403: "access forbidden, your account may not have permission to access this Jira instance",
	404: "Jira server not found, verify the server URL",
	429: "rate limit exceeded, try again later",
	500: "Jira server internal error, try again later or contact your administrator",
	502: "bad gateway, there may be network connectivity issues",
	503: "Jira service unavailable, the server may be under maintenance",
	504: "gateway timeout, the request took too long to complete",
}

// operationErrorMessages maps a remote status code to an operation-class
// message template taking the operation name. Unmapped codes fall through
// to a generic message carrying the raw status and error text.
var operationErrorMessages = map[int]string{
	400: "bad request for %s, check your input parameters",
	401: "authentication failed during %s",
	403: "permission denied for %s, contact your Jira administrator",
	404: "resource not found for %s, check project key, issue type, or parent issue",
	409: "conflict occurred during %s, the resource may already exist",
	422: "invalid input for %s, check required fields and field types",
	429: "rate limit exceeded during %s, try again later",
}

func statusCode(resp *gojira.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}

func newConnectionError(resp *gojira.Response, err error) *ConnectionError {
	status := statusCode(resp)
	details := fmt.Sprintf("HTTP %d: %v", status, err)
	if message, ok := connectionErrorMessages[status]; ok {
		return &ConnectionError{Message: message, Details: details}
	}
	return &ConnectionError{Message: "connection to Jira failed", Details: details}
}

func newOperationError(resp *gojira.Response, err error, operation string) *OperationError {
	status := statusCode(resp)
	details := fmt.Sprintf("HTTP %d: %v", status, err)
	if template, ok := operationErrorMessages[status]; ok {
		return &OperationError{Message: fmt.Sprintf(template, operation), Details: details}
	}
	return &OperationError{Message: fmt.Sprintf("operation %q failed", operation), Details: details}
}
