// Package stringutil provides string helpers for display and logging.
package stringutil

import "strings"

// Truncate shortens s to at most maxLen characters, appending "..." when
// content is removed and maxLen leaves room for it. Cuts happen on rune
// boundaries so the result is always valid UTF-8.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}

// MaskSecret masks sensitive data for logging, leaving the last four
// characters visible. Values too short to mask safely are replaced with a
// fixed-width mask so their length is not revealed.
func MaskSecret(secret string) string {
	const visible = 4
	if secret == "" || len(secret) <= visible {
		return strings.Repeat("*", 8)
	}
	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}
