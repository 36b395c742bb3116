package console

import (
	"fmt"
	"strings"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var renderLog = logger.New("console:render")

// KV is a single labeled value in a rendered summary block.
type KV struct {
	Key   string
	Value string
}

// RenderKeyValues renders a titled block of aligned key-value pairs, used
// for the validated-configuration summary and the dry-run payload preview.
// Empty values are rendered as "-".
func RenderKeyValues(title string, pairs []KV) string {
	renderLog.Printf("Rendering %q block with %d pairs", title, len(pairs))

	maxKeyLen := 0
	for _, pair := range pairs {
		if len(pair.Key) > maxKeyLen {
			maxKeyLen = len(pair.Key)
		}
	}

	var output strings.Builder
	if title != "" {
		fmt.Fprintf(&output, "# %s\n\n", title)
	}
	for _, pair := range pairs {
		value := pair.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&output, "  %-*s: %s\n", maxKeyLen, pair.Key, value)
	}
	output.WriteString("\n")
	return output.String()
}
