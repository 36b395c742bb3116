// Package tty reports whether the process standard streams are attached to
// a terminal. Used to gate color output and interactive prompts.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsStderrTerminal returns true if stderr is attached to a terminal.
func IsStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// IsStdinTerminal returns true if stdin is attached to a terminal.
// Interactive prompts require this to be true.
func IsStdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
