package handler

import (
	"fmt"
	"io"

	"vien/internal/core"
)

type PathCommandHandler struct {
	environmentManager core.EnvironmentManager
}

func ProvidePathCommandHandler(environmentManager core.EnvironmentManager) PathCommandHandler {
	return PathCommandHandler{
		environmentManager: environmentManager,
	}
}

// Handle prints the environment directory whether or not it exists.
func (h *PathCommandHandler) Handle(out io.Writer) error {
	_, err := fmt.Fprintln(out, h.environmentManager.Ref().EnvDir)
	return err
}
