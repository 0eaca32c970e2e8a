package termstyle

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal. Useful for
// skipping escape sequences when output is piped or redirected.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the column and row count of the terminal attached
// to f, typically os.Stdout.
func TerminalSize(f *os.File) (cols, rows int, err error) {
	return term.GetSize(int(f.Fd()))
}
