package handler

import (
	"context"
	"path/filepath"
	"time"

	"vien/internal/cli/output"
	"vien/internal/core"
	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/charmbracelet/log"
)

const bashRcFile = ".bashrc"

// ShellOptions carries the hidden flags used to drive the interactive shell from tests.
type ShellOptions struct {
	// Input is written to the shell's stdin after Delay; nil leaves stdin attached to the terminal.
	Input   []byte
	Delay   time.Duration
	Timeout time.Duration
}

type ShellCommandHandler struct {
	environmentManager core.EnvironmentManager
	promptResolver     core.PromptResolver
	configRepository   core.ConfigRepository
	fileSystem         ports.FileSystem
	terminalInput      ports.TerminalInput
	commandRunner      ports.CommandRunner
	settings           domain.Settings
	logger             *log.Logger
}

func ProvideShellCommandHandler(
	environmentManager core.EnvironmentManager,
	promptResolver core.PromptResolver,
	configRepository core.ConfigRepository,
	fileSystem ports.FileSystem,
	terminalInput ports.TerminalInput,
	commandRunner ports.CommandRunner,
	settings domain.Settings,
	logger *log.Logger,
) ShellCommandHandler {
	return ShellCommandHandler{
		environmentManager: environmentManager,
		promptResolver:     promptResolver,
		configRepository:   configRepository,
		fileSystem:         fileSystem,
		terminalInput:      terminalInput,
		commandRunner:      commandRunner,
		settings:           settings,
		logger:             logger,
	}
}

// Handle starts an interactive bash with the environment activated and returns
// the shell's exit code once the user leaves it.
func (h *ShellCommandHandler) Handle(ctx context.Context, options ShellOptions) (int, error) {
	if err := h.environmentManager.RequireExisting(); err != nil {
		return 0, err
	}
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return 0, err
	}

	if options.Input == nil && !h.terminalInput.IsTerminal() {
		output.PrintWarning("stdin is not a terminal, the shell will read commands from it")
	}

	ref := h.environmentManager.Ref()
	session := core.InteractiveSession{
		EnvDir:     ref.EnvDir,
		Label:      ref.Name(),
		BasePrompt: h.promptResolver.BasePrompt(ctx, h.settings.InheritedPrompt),
		RcFile:     h.rcFile(),
		Color:      config.UsePromptColor(),
	}
	h.logger.Debug("starting shell", "envDir", session.EnvDir, "rcFile", session.RcFile, "basePrompt", session.BasePrompt)

	result, err := h.commandRunner.Execute(ctx, domain.RunSpec{
		Script:     core.BuildInteractiveSession(session),
		Input:      options.Input,
		InputDelay: options.Delay,
		Timeout:    options.Timeout,
	})
	if err != nil {
		return 0, err
	}
	return result.ExitCode, nil
}

func (h *ShellCommandHandler) rcFile() string {
	if h.settings.HomeDir == "" {
		return ""
	}
	path := filepath.Join(h.settings.HomeDir, bashRcFile)
	exists, err := h.fileSystem.FileExists(path)
	if err != nil {
		h.logger.Debug("failed to check rc file", "path", path, "error", err)
		return ""
	}
	if !exists {
		return ""
	}
	return path
}
