package handler

import (
	"context"
	"fmt"

	"vien/internal/cli/output"
	"vien/internal/core"
)

type CreateCommandHandler struct {
	environmentManager core.EnvironmentManager
}

func ProvideCreateCommandHandler(environmentManager core.EnvironmentManager) CreateCommandHandler {
	return CreateCommandHandler{
		environmentManager: environmentManager,
	}
}

// Handle creates the environment with the given interpreter, the configured default when empty.
func (h *CreateCommandHandler) Handle(ctx context.Context, interpreter string) error {
	if err := h.environmentManager.RequireAbsent(); err != nil {
		return err
	}
	ref := h.environmentManager.Ref()
	output.PrintStep(fmt.Sprintf("Creating %s", output.Bold(ref.EnvDir)))

	python, err := h.environmentManager.Create(ctx, interpreter)
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Created environment for %s", ref.Name()))
	output.PrintSecondary(python)
	return nil
}
