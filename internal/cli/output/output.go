package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Status output goes to stderr so the stdout of "vien run" stays the child's own.
var writer io.Writer = os.Stderr

// SetWriter redirects status output and returns a function restoring the previous writer.
func SetWriter(w io.Writer) func() {
	previous := writer
	writer = w
	return func() { writer = previous }
}

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	f, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolArrow   = "->"
)

func style(code, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", code, text, reset)
}

// Bold returns text in bold (or plain if colors disabled)
func Bold(text string) string {
	return style(bold, text)
}

// Dim returns text in dim style (or plain if colors disabled)
func Dim(text string) string {
	return style(dim, text)
}

func Success(text string) string {
	return style(green, text)
}

func Error(text string) string {
	return style(red, text)
}

func Warning(text string) string {
	return style(yellow, text)
}

// Secondary returns text in dim cyan for secondary information
func Secondary(text string) string {
	return style(dim+cyan, text)
}

// PrintSuccess prints a success message with + symbol
func PrintSuccess(message string) {
	fmt.Fprintf(writer, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message with x symbol
func PrintError(message string) {
	fmt.Fprintf(writer, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message with ! symbol
func PrintWarning(message string) {
	fmt.Fprintf(writer, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Fprintf(writer, "  %s %s\n", SymbolArrow, message)
}

// PrintSecondary prints secondary/supplementary information
func PrintSecondary(message string) {
	fmt.Fprintf(writer, "  %s %s\n", SymbolArrow, Secondary(message))
}
