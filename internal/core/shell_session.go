package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"vien/internal/core/domain"
)

const (
	promptLabelColor = `\e[33m`
	promptNoColor    = `\e[0m`

	// PromptLabelVar holds the label inside the sub-shell. The prompt only references
	// it, so bash never expands the label's own text.
	PromptLabelVar = "VIEN_PROMPT_LABEL"
)

// InteractiveSession describes the sub-shell started by "vien shell".
type InteractiveSession struct {
	EnvDir     string
	Label      string
	BasePrompt string
	// RcFile is the user's bash start-up file, empty when there is none.
	RcFile string
	Color  bool
}

// BuildInteractiveSession activates the environment and replaces the script's shell
// with an interactive bash whose prompt shows the environment label.
func BuildInteractiveSession(session InteractiveSession) domain.ShellScript {
	prompt := ComposePrompt(session.BasePrompt, session.Color)
	activate := activationStatement(session.EnvDir)
	label := "export " + PromptLabelVar + "=" + Quote(session.Label)

	if session.RcFile != "" {
		// The prompt line goes last so it wins over whatever the rc file sets.
		rcFile := fmt.Sprintf("<(cat %s; echo; echo %s)", Quote(session.RcFile), Quote("PS1="+Quote(prompt)))
		return domain.NewShellScript(activate, label, "exec bash --rcfile "+rcFile+" -i")
	}
	return domain.NewShellScript(activate, label, "PS1="+Quote(prompt)+" exec bash --norc -i")
}

// BuildRunSession activates the environment and runs argv as a single command.
func BuildRunSession(envDir string, argv []string) domain.ShellScript {
	return domain.NewShellScript(activationStatement(envDir), QuoteAll(argv))
}

// BuildCreateSession runs "interpreter -m venv envDir".
func BuildCreateSession(interpreter, envDir string) domain.ShellScript {
	return domain.NewShellScript("exec " + QuoteAll([]string{interpreter, "-m", "venv", envDir}))
}

// ComposePrompt prefixes base with a reference to PromptLabelVar. Colour escapes are
// wrapped in \[ \] so readline does not count them towards the prompt width.
func ComposePrompt(base string, color bool) string {
	label := "${" + PromptLabelVar + "}"
	base = normalizePrompt(base)
	if !color {
		return label + ":" + base
	}
	return `\[` + promptLabelColor + `\]` + label + `\[` + promptNoColor + `\]` + ":" + base
}

// normalizePrompt rewrites raw ESC and BEL bytes into their PS1 escapes and drops
// other control characters, so the prompt survives quoting as printable text.
func normalizePrompt(prompt string) string {
	var b strings.Builder
	for _, r := range prompt {
		switch {
		case r == '\x1b':
			b.WriteString(`\e`)
		case r == '\a':
			b.WriteString(`\a`)
		case r == '\n':
			b.WriteString(`\n`)
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func activationStatement(envDir string) string {
	return "source " + Quote(filepath.Join(envDir, "bin", "activate"))
}
