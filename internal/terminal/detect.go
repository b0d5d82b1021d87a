// Package terminal detects whether devmake can prompt the user.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Interactive reports whether stdin and stdout are both terminals, so a
// prompt can render and read a response. Piped or redirected invocations
// must take the non-interactive path.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
