// Package console produces the user-facing output of the action: styled,
// level-gated status lines on stderr. Styling is applied only when stderr
// is attached to a terminal, so CI logs stay plain.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jiraops/jira-issue-action/pkg/tty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

func render(style lipgloss.Style, message string) string {
	if !tty.IsStderrTerminal() {
		return message
	}
	return style.Render(message)
}

// FormatSuccessMessage formats a success message with a checkmark prefix.
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓ "+message)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return render(infoStyle, message)
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return render(warningStyle, "⚠ "+message)
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗ "+message)
}

// FormatDebugMessage formats a low-importance diagnostic message.
func FormatDebugMessage(message string) string {
	return render(dimStyle, message)
}

// Level is a console verbosity level, ordered from most to least verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// ParseLevel maps a LOG_LEVEL string to a Level, case-insensitively.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARNING", "WARN":
		return LevelWarning
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Printer writes level-gated status lines to a single destination. It is
// configured once at process start and injected into the components that
// report progress, keeping them testable without global state.
type Printer struct {
	out   io.Writer
	level Level
}

// NewPrinter creates a Printer writing to out at the given level.
func NewPrinter(out io.Writer, level Level) *Printer {
	return &Printer{out: out, level: level}
}

// Level reports the printer's verbosity level.
func (p *Printer) Level() Level {
	return p.level
}

// Debugf prints a diagnostic line when the level allows it.
func (p *Printer) Debugf(format string, args ...any) {
	if p.level <= LevelDebug {
		fmt.Fprintln(p.out, FormatDebugMessage(fmt.Sprintf(format, args...)))
	}
}

// Infof prints an informational line when the level allows it.
func (p *Printer) Infof(format string, args ...any) {
	if p.level <= LevelInfo {
		fmt.Fprintln(p.out, FormatInfoMessage(fmt.Sprintf(format, args...)))
	}
}

// Successf prints a success line when the level allows it.
func (p *Printer) Successf(format string, args ...any) {
	if p.level <= LevelInfo {
		fmt.Fprintln(p.out, FormatSuccessMessage(fmt.Sprintf(format, args...)))
	}
}

// Warnf prints a warning line when the level allows it.
func (p *Printer) Warnf(format string, args ...any) {
	if p.level <= LevelWarning {
		fmt.Fprintln(p.out, FormatWarningMessage(fmt.Sprintf(format, args...)))
	}
}

// Errorf prints an error line. Errors are never suppressed.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, FormatErrorMessage(fmt.Sprintf(format, args...)))
}

// IsAccessibleMode reports whether interactive prompts should run in
// accessible mode for screen readers.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}
