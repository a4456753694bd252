package ports

import (
	"context"

	"vien/internal/core/domain"
)

// CommandRunner executes bash scripts as child processes.
type CommandRunner interface {
	// Execute runs spec.Script under bash and waits for it. A non-zero exit code is
	// reported in the result, not as an error. Timeouts surface as
	// *domain.ProcessTimeoutError, invalid specs as *domain.InvalidRunSpecError.
	Execute(ctx context.Context, spec domain.RunSpec) (*domain.RunResult, error)
	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}
