// Package logger implements a namespaced debug logger controlled by the
// DEBUG environment variable, following the pattern syntax of the npm
// debug package:
//
//	DEBUG=*                enables all loggers
//	DEBUG=jira:*           enables all loggers under a namespace
//	DEBUG=ns1,ns2          enables specific namespaces
//	DEBUG=jira:*,-jira:api enables a namespace but excludes a pattern
//
// Each package creates its loggers once as package vars:
//
//	var clientLog = logger.New("jira:client")
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jiraops/jira-issue-action/pkg/timeutil"
	"github.com/jiraops/jira-issue-action/pkg/tty"
)

// Logger writes debug messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	color     string
	mu        sync.Mutex
	lastLog   time.Time
}

var (
	// DEBUG and DEBUG_COLORS are read once at process start.
	debugEnv    = os.Getenv("DEBUG")
	debugColors = os.Getenv("DEBUG_COLORS") != "0"
	isTTY       = tty.IsStderrTerminal()

	// ANSI 256-color codes, readable on light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // blue
		"\033[38;5;35m",  // green
		"\033[38;5;166m", // orange
		"\033[38;5;125m", // purple
		"\033[38;5;37m",  // cyan
		"\033[38;5;161m", // magenta
		"\033[38;5;136m", // yellow
		"\033[38;5;124m", // red
	}

	colorReset = "\033[0m"
)

// New creates a Logger for the given namespace. The enabled state is
// computed once at construction from the DEBUG environment variable, and a
// stable color is assigned to the namespace when stderr is a TTY.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled reports whether this logger emits output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message with a trailing newline and a +duration
// suffix showing time elapsed since the previous message on this logger.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs a message with a trailing newline and a +duration suffix.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, timeutil.FormatDuration(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, timeutil.FormatDuration(diff))
	}
}

// selectColor picks a stable palette color for a namespace via FNV-1a.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled matches a namespace against the comma-separated DEBUG
// patterns. Exclusion patterns (leading -) take precedence.
func computeEnabled(namespace string) bool {
	enabled := false
	for _, pattern := range strings.Split(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern supports exact matches and a single * wildcard in prefix,
// suffix, or middle position.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok && !strings.Contains(prefix, "*") {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok && !strings.Contains(suffix, "*") {
		return strings.HasSuffix(namespace, suffix)
	}
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
