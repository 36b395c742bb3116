// Package timeutil provides small helpers for formatting durations in log output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration compactly for debug log suffixes,
// following the conventions of the npm debug package: a single unit,
// chosen by magnitude (ms, s, m, h).
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int64(d/time.Hour))
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int64(d/time.Minute))
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d/time.Second))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
