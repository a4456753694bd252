package handler

import (
	"context"
	"fmt"

	"vien/internal/cli/output"
	"vien/internal/core"
)

type RecreateCommandHandler struct {
	environmentManager core.EnvironmentManager
}

func ProvideRecreateCommandHandler(environmentManager core.EnvironmentManager) RecreateCommandHandler {
	return RecreateCommandHandler{
		environmentManager: environmentManager,
	}
}

// Handle removes the environment if there is one and creates it again.
func (h *RecreateCommandHandler) Handle(ctx context.Context, interpreter string) error {
	ref := h.environmentManager.Ref()

	removed, err := h.environmentManager.Clear()
	if err != nil {
		return err
	}
	if removed {
		output.PrintStep(fmt.Sprintf("Removed %s", output.Dim(ref.EnvDir)))
	}

	output.PrintStep(fmt.Sprintf("Creating %s", output.Bold(ref.EnvDir)))
	python, err := h.environmentManager.Create(ctx, interpreter)
	if err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Recreated environment for %s", ref.Name()))
	output.PrintSecondary(python)
	return nil
}
