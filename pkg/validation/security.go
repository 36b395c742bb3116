package validation

import (
	"regexp"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var securityLog = logger.New("validation:security")

// securitySignature pairs a compiled injection pattern with a short
// description used in debug logs. The list is data, not logic, so it can be
// tested and extended independently of the scanning code.
type securitySignature struct {
	pattern     *regexp.Regexp
	description string
}

// securitySignatures is the fixed set of injection signatures. Matching any
// of them, case-insensitively, is a hard rejection with no escaping or
// quoting fallback.
var securitySignatures = []securitySignature{
	{regexp.MustCompile("(?i)[;&|`$()]"), "shell metacharacter"},
	{regexp.MustCompile(`(?i)<script[^>]*>`), "script tag"},
	{regexp.MustCompile(`(?i)javascript:`), "javascript URI"},
	{regexp.MustCompile(`(?i)data:`), "data URI"},
	{regexp.MustCompile(`(?i)vbscript:`), "vbscript URI"},
	{regexp.MustCompile(`(?i)onload\s*=`), "onload handler"},
	{regexp.MustCompile(`(?i)onerror\s*=`), "onerror handler"},
	{regexp.MustCompile(`(?i)\$\([^)]*\)`), "command substitution"},
	{regexp.MustCompile("(?i)`[^`]*`"), "backtick execution"},
}

// CheckDangerousContent scans text against the injection signature table
// and returns a field-scoped error on the first match. It is applied to the
// server URL, summary, description, username, assignee, and each label, but
// deliberately not to the API token, project key, issue type, priority, or
// attachment paths, which are constrained by charset or whitelist instead.
func CheckDangerousContent(text, field string) error {
	for _, sig := range securitySignatures {
		if sig.pattern.MatchString(text) {
			securityLog.Printf("Rejected %s: matched %s signature", field, sig.description)
			return newError(field, "potentially malicious content detected (%s), please review your input", sig.description)
		}
	}
	return nil
}
