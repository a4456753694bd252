package domain

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mvdan.cc/sh/v3/syntax"
)

// ShellScript is an ordered, immutable list of bash statements.
type ShellScript struct {
	statements []string
}

func NewShellScript(statements ...string) ShellScript {
	return ShellScript{statements: append([]string(nil), statements...)}
}

func (s ShellScript) Statements() []string {
	return append([]string(nil), s.statements...)
}

func (s ShellScript) IsEmpty() bool {
	return len(s.statements) == 0
}

func (s ShellScript) String() string {
	return strings.Join(s.statements, "\n")
}

// Validate parses the script as bash and reports the first syntax error.
func (s ShellScript) Validate() error {
	if s.IsEmpty() {
		return fmt.Errorf("script is empty")
	}
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(s.String()), "script"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// RunSpec describes one execution of a ShellScript.
type RunSpec struct {
	Script ShellScript
	// Input is written to the child's stdin after InputDelay, then stdin is closed.
	// Nil means no scripted input.
	Input      []byte
	InputDelay time.Duration
	// Timeout of zero disables the timeout.
	Timeout       time.Duration
	CaptureOutput bool

	// Optional external streams; nil means inherit from the current process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s RunSpec) Validate() error {
	if s.Input != nil && s.Stdin != nil {
		return &InvalidRunSpecError{Reason: "stdin and input may not both be used"}
	}
	if s.CaptureOutput && (s.Stdout != nil || s.Stderr != nil) {
		return &InvalidRunSpecError{Reason: "stdout and stderr may not be used with output capture"}
	}
	if s.InputDelay < 0 {
		return &InvalidRunSpecError{Reason: fmt.Sprintf("negative input delay %s", s.InputDelay)}
	}
	if s.Timeout < 0 {
		return &InvalidRunSpecError{Reason: fmt.Sprintf("negative timeout %s", s.Timeout)}
	}
	if err := s.Script.Validate(); err != nil {
		return &InvalidRunSpecError{Reason: err.Error()}
	}
	return nil
}

// RunResult is the outcome of a completed process.
// Stdout and Stderr are nil unless output was captured.
type RunResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (r *RunResult) Success() bool {
	return r.ExitCode == 0
}
