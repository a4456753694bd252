package handler

import (
	"context"
	"errors"
	"testing"

	"vien/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecreateCommandHandler_Handle_RemovesThenCreates(t *testing.T) {
	out := captureOutput(t)
	m := newMocks()
	m.fileSystem.On("FileExists", testRef.EnvDir).Return(true, nil).Once()
	m.fileSystem.On("RemoveAll", testRef.EnvDir).Return(nil).Once()
	m.fileSystem.On("FileExists", testRef.EnvDir).Return(false, nil).Once()
	m.commandRunner.On("LookPath", "python3").Return("/usr/bin/python3", nil)
	m.fileSystem.On("EnsureDirExists", testRef.EnvDir).Return(nil)
	m.commandRunner.On("Execute", mock.Anything, mock.Anything).Return(&domain.RunResult{ExitCode: 0}, nil)
	m.fileSystem.On("FileExists", testRef.Python()).Return(true, nil)

	sut := ProvideRecreateCommandHandler(m.environmentManager())
	err := sut.Handle(context.Background(), "python3")

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Removed "+testRef.EnvDir)
	assert.Contains(t, out.String(), "Recreated environment for project")
	m.fileSystem.AssertExpectations(t)
}

func TestRecreateCommandHandler_Handle_ToleratesMissingEnvironment(t *testing.T) {
	out := captureOutput(t)
	m := newMocks()
	m.fileSystem.On("FileExists", testRef.EnvDir).Return(false, nil)
	m.commandRunner.On("LookPath", "python3").Return("/usr/bin/python3", nil)
	m.fileSystem.On("EnsureDirExists", testRef.EnvDir).Return(nil)
	m.commandRunner.On("Execute", mock.Anything, mock.Anything).Return(&domain.RunResult{ExitCode: 0}, nil)
	m.fileSystem.On("FileExists", testRef.Python()).Return(true, nil)

	sut := ProvideRecreateCommandHandler(m.environmentManager())
	err := sut.Handle(context.Background(), "python3")

	assert.NoError(t, err)
	assert.NotContains(t, out.String(), "Removed")
	m.fileSystem.AssertNotCalled(t, "RemoveAll", mock.Anything)
}

func TestRecreateCommandHandler_Handle_CreationFailure(t *testing.T) {
	captureOutput(t)
	m := newMocks()
	m.fileSystem.On("FileExists", testRef.EnvDir).Return(false, nil)
	m.commandRunner.On("LookPath", "python3").Return("/usr/bin/python3", nil)
	m.fileSystem.On("EnsureDirExists", testRef.EnvDir).Return(nil)
	m.commandRunner.On("Execute", mock.Anything, mock.Anything).Return(&domain.RunResult{ExitCode: 2}, nil)

	sut := ProvideRecreateCommandHandler(m.environmentManager())
	err := sut.Handle(context.Background(), "python3")

	assert.ErrorIs(t, err, domain.ErrEnvironmentCreationFailed)
}

func TestRecreateCommandHandler_Handle_RemovalFailureStopsBeforeCreating(t *testing.T) {
	out := captureOutput(t)
	m := newMocks()
	m.fileSystem.On("FileExists", testRef.EnvDir).Return(true, nil)
	m.fileSystem.On("RemoveAll", testRef.EnvDir).Return(errors.New("permission denied"))

	sut := ProvideRecreateCommandHandler(m.environmentManager())
	err := sut.Handle(context.Background(), "python3")

	assert.ErrorIs(t, err, domain.ErrEnvironmentClearFailed)
	assert.NotContains(t, out.String(), "Creating")
	m.commandRunner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
