package terminal

import (
	"os"

	"vien/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput inspects the process stdin using golang.org/x/term.
type TerminalInput struct {
	stdin *os.File
}

// ProvideTerminalInput creates a new TerminalInput adapter.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{stdin: os.Stdin}
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(t.stdin.Fd()))
}
