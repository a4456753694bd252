package core

import (
	"context"
	"fmt"

	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/charmbracelet/log"
)

// EnvironmentManager creates and removes the environment directory of one project.
type EnvironmentManager struct {
	ref                 domain.EnvironmentRef
	fileSystem          ports.FileSystem
	commandRunner       ports.CommandRunner
	interpreterResolver InterpreterResolver
	logger              *log.Logger
}

func ProvideEnvironmentManager(
	ref domain.EnvironmentRef,
	fileSystem ports.FileSystem,
	commandRunner ports.CommandRunner,
	interpreterResolver InterpreterResolver,
	logger *log.Logger,
) EnvironmentManager {
	return EnvironmentManager{
		ref:                 ref,
		fileSystem:          fileSystem,
		commandRunner:       commandRunner,
		interpreterResolver: interpreterResolver,
		logger:              logger,
	}
}

func (m *EnvironmentManager) Ref() domain.EnvironmentRef {
	return m.ref
}

func (m *EnvironmentManager) Exists() (bool, error) {
	exists, err := m.fileSystem.FileExists(m.ref.EnvDir)
	if err != nil {
		return false, fmt.Errorf("failed to check environment %s: %w", m.ref.EnvDir, err)
	}
	return exists, nil
}

// RequireExisting fails with EnvironmentMissing unless the environment directory exists.
func (m *EnvironmentManager) RequireExisting() error {
	exists, err := m.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewError(domain.KindEnvironmentMissing, m.ref.EnvDir, nil)
	}
	return nil
}

// RequireAbsent fails with EnvironmentAlreadyExists if the environment directory exists.
func (m *EnvironmentManager) RequireAbsent() error {
	exists, err := m.Exists()
	if err != nil {
		return err
	}
	if exists {
		return domain.NewError(domain.KindEnvironmentAlreadyExists, m.ref.EnvDir, nil)
	}
	return nil
}

// Create runs "interpreter -m venv" for the environment directory and returns the
// path of the environment's python executable.
func (m *EnvironmentManager) Create(ctx context.Context, interpreter string) (string, error) {
	if err := m.RequireAbsent(); err != nil {
		return "", err
	}

	executable, err := m.interpreterResolver.Resolve(interpreter)
	if err != nil {
		return "", err
	}
	m.logger.Debug("resolved interpreter", "requested", interpreter, "executable", executable)

	if err := m.fileSystem.EnsureDirExists(m.ref.EnvDir); err != nil {
		return "", domain.NewError(domain.KindEnvironmentCreationFailed, m.ref.EnvDir, err)
	}

	result, err := m.commandRunner.Execute(ctx, domain.RunSpec{
		Script: BuildCreateSession(executable, m.ref.EnvDir),
	})
	if err != nil {
		return "", domain.NewError(domain.KindEnvironmentCreationFailed, m.ref.EnvDir, err)
	}
	if !result.Success() {
		return "", domain.NewError(
			domain.KindEnvironmentCreationFailed,
			m.ref.EnvDir,
			fmt.Errorf("%s exited with code %d", executable, result.ExitCode),
		)
	}

	created, err := m.fileSystem.FileExists(m.ref.Python())
	if err != nil || !created {
		return "", domain.NewError(
			domain.KindEnvironmentCreationFailed,
			m.ref.EnvDir,
			fmt.Errorf("%s was not created", m.ref.Python()),
		)
	}
	return m.ref.Python(), nil
}

// Delete removes the environment directory. It refuses, without touching the file
// system, directories whose name lacks the safety suffix.
func (m *EnvironmentManager) Delete() error {
	if err := m.checkSafetySuffix(); err != nil {
		return err
	}
	if err := m.RequireExisting(); err != nil {
		return err
	}
	return m.remove()
}

// Clear is Delete that tolerates a missing directory. It reports whether anything was removed.
func (m *EnvironmentManager) Clear() (bool, error) {
	if err := m.checkSafetySuffix(); err != nil {
		return false, err
	}
	exists, err := m.Exists()
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	return true, m.remove()
}

func (m *EnvironmentManager) checkSafetySuffix() error {
	if !m.ref.HasSafetySuffix() {
		return domain.NewError(
			domain.KindEnvironmentClearFailed,
			m.ref.EnvDir,
			fmt.Errorf("directory name does not contain %q", domain.VenvSuffix),
		)
	}
	return nil
}

func (m *EnvironmentManager) remove() error {
	m.logger.Debug("removing environment", "path", m.ref.EnvDir)
	if err := m.fileSystem.RemoveAll(m.ref.EnvDir); err != nil {
		return domain.NewError(domain.KindEnvironmentClearFailed, m.ref.EnvDir, err)
	}
	return nil
}
