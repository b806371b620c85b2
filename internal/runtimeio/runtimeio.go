// Package runtimeio answers questions about the process's terminal.
package runtimeio

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether stdin is attached to a terminal. The REPL
// only prints prompts and banners when it is.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
