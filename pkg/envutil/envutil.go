// Package envutil provides helpers for reading environment variables.
package envutil

import (
	"os"
	"strings"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var log = logger.New("envutil:envutil")

// GetInput returns the value of an action input. GitHub Actions forwards
// declared inputs as INPUT_<NAME>, so that form is checked first, falling
// back to the bare name for direct env: configuration and local runs.
func GetInput(name string) string {
	if value := os.Getenv("INPUT_" + name); strings.TrimSpace(value) != "" {
		log.Printf("Input %s read from INPUT_ prefixed variable", name)
		return value
	}
	return os.Getenv(name)
}
