package handler

import (
	"context"
	"errors"
	"time"

	"vien/internal/core"
	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/charmbracelet/log"
)

type RunCommandHandler struct {
	environmentManager core.EnvironmentManager
	commandRunner      ports.CommandRunner
	logger             *log.Logger
}

func ProvideRunCommandHandler(
	environmentManager core.EnvironmentManager,
	commandRunner ports.CommandRunner,
	logger *log.Logger,
) RunCommandHandler {
	return RunCommandHandler{
		environmentManager: environmentManager,
		commandRunner:      commandRunner,
		logger:             logger,
	}
}

// Handle runs argv inside the activated environment and returns its exit code.
// A zero timeout means no limit.
func (h *RunCommandHandler) Handle(ctx context.Context, argv []string, timeout time.Duration) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("no command given")
	}
	if err := h.environmentManager.RequireExisting(); err != nil {
		return 0, err
	}

	envDir := h.environmentManager.Ref().EnvDir
	h.logger.Debug("running command", "envDir", envDir, "argv", argv)
	result, err := h.commandRunner.Execute(ctx, domain.RunSpec{
		Script:  core.BuildRunSession(envDir, argv),
		Timeout: timeout,
	})
	if err != nil {
		return 0, err
	}
	return result.ExitCode, nil
}
