package handler

import (
	"fmt"

	"vien/internal/cli/output"
	"vien/internal/core"
)

type DeleteCommandHandler struct {
	environmentManager core.EnvironmentManager
}

func ProvideDeleteCommandHandler(environmentManager core.EnvironmentManager) DeleteCommandHandler {
	return DeleteCommandHandler{
		environmentManager: environmentManager,
	}
}

func (h *DeleteCommandHandler) Handle() error {
	if err := h.environmentManager.Delete(); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Deleted %s", h.environmentManager.Ref().EnvDir))
	return nil
}
