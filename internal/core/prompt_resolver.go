package core

import (
	"context"
	"runtime"
	"strings"
	"time"

	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/charmbracelet/log"
)

const (
	// BSDDefaultPrompt is the prompt bash shows on macOS and the BSDs without a PS1.
	BSDDefaultPrompt = `\h:\W \u\$ `
	// FallbackPrompt is used when no prompt could be discovered.
	FallbackPrompt = `\u@\h:\w\$ `

	promptQueryTimeout = 5 * time.Second
	promptSentinel     = "__vien_ps1__"
)

// PromptResolver finds the prompt the user would normally see in bash.
type PromptResolver struct {
	commandRunner ports.CommandRunner
	logger        *log.Logger
	goos          string
}

func ProvidePromptResolver(commandRunner ports.CommandRunner, logger *log.Logger) PromptResolver {
	return PromptResolver{
		commandRunner: commandRunner,
		logger:        logger,
		goos:          runtime.GOOS,
	}
}

// BasePrompt prefers the inherited prompt. Otherwise it asks an interactive bash for
// its PS1, which is a heuristic: the answer reflects the user's start-up files but
// not necessarily what their terminal shows.
func (r *PromptResolver) BasePrompt(ctx context.Context, inherited string) string {
	if inherited != "" {
		return inherited
	}
	if isBSDLike(r.goos) {
		return BSDDefaultPrompt
	}
	if prompt := r.queryInteractivePrompt(ctx); prompt != "" {
		return prompt
	}
	return FallbackPrompt
}

func (r *PromptResolver) queryInteractivePrompt(ctx context.Context) string {
	// The sentinel separates PS1 from anything the start-up files print.
	query := `printf "%s%s" ` + Quote(promptSentinel) + ` "$PS1"`
	result, err := r.commandRunner.Execute(ctx, domain.RunSpec{
		Script:        domain.NewShellScript("exec bash -i -c " + Quote(query)),
		Input:         []byte{},
		Timeout:       promptQueryTimeout,
		CaptureOutput: true,
	})
	if err != nil {
		r.logger.Debug("failed to query interactive prompt", "error", err)
		return ""
	}
	if !result.Success() {
		r.logger.Debug("interactive prompt query failed", "exitCode", result.ExitCode)
		return ""
	}

	output := string(result.Stdout)
	idx := strings.LastIndex(output, promptSentinel)
	if idx < 0 {
		return ""
	}
	return strings.TrimRight(output[idx+len(promptSentinel):], "\r\n")
}

func isBSDLike(goos string) bool {
	switch goos {
	case "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		return true
	default:
		return false
	}
}
