package ports

// TerminalInput describes the terminal the CLI was started from.
type TerminalInput interface {
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
