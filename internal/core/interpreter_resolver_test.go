package core

import (
	"errors"
	"testing"

	"vien/internal/core/domain"
	"vien/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newInterpreterResolver() (InterpreterResolver, *testutil.MockCommandRunner, *testutil.MockFileSystem, *testutil.MockConfigRepository) {
	commandRunner := new(testutil.MockCommandRunner)
	fileSystem := new(testutil.MockFileSystem)
	configRepository := new(testutil.MockConfigRepository)
	return ProvideInterpreterResolver(commandRunner, fileSystem, configRepository), commandRunner, fileSystem, configRepository
}

func TestInterpreterResolver_Resolve_EmptyUsesConfiguredDefault(t *testing.T) {
	sut, commandRunner, _, configRepository := newInterpreterResolver()
	configRepository.On("LoadConfig").Return(&domain.Config{Interpreter: "python3.11"}, nil)
	commandRunner.On("LookPath", "python3.11").Return("/usr/bin/python3.11", nil)

	path, err := sut.Resolve("")

	assert.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3.11", path)
	configRepository.AssertExpectations(t)
}

func TestInterpreterResolver_Resolve_VersionNumber(t *testing.T) {
	sut, commandRunner, _, _ := newInterpreterResolver()
	commandRunner.On("LookPath", "python3.12").Return("/usr/bin/python3.12", nil)

	path, err := sut.Resolve("3.12")

	assert.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3.12", path)
}

func TestInterpreterResolver_Resolve_Path(t *testing.T) {
	sut, commandRunner, fileSystem, _ := newInterpreterResolver()
	fileSystem.On("FileExists", "/opt/python/bin/python3").Return(true, nil)

	path, err := sut.Resolve("/opt/python/bin/python3")

	assert.NoError(t, err)
	assert.Equal(t, "/opt/python/bin/python3", path)
	commandRunner.AssertNotCalled(t, "LookPath", "/opt/python/bin/python3")
}

func TestInterpreterResolver_Resolve_MissingPath(t *testing.T) {
	sut, _, fileSystem, _ := newInterpreterResolver()
	fileSystem.On("FileExists", "./missing/python").Return(false, nil)

	_, err := sut.Resolve("./missing/python")

	assert.ErrorIs(t, err, domain.ErrInterpreterNotResolvable)
}

func TestInterpreterResolver_Resolve_NotInPath(t *testing.T) {
	sut, commandRunner, _, _ := newInterpreterResolver()
	commandRunner.On("LookPath", "python9").Return("", errors.New("executable file not found in $PATH"))

	_, err := sut.Resolve("python9")

	assert.ErrorIs(t, err, domain.ErrInterpreterNotResolvable)
	assert.Contains(t, err.Error(), "python9")
}

func TestInterpreterResolver_Resolve_ConfigError(t *testing.T) {
	sut, _, _, configRepository := newInterpreterResolver()
	expectedErr := errors.New("failed to parse config file")
	configRepository.On("LoadConfig").Return(nil, expectedErr)

	_, err := sut.Resolve("  ")

	assert.Equal(t, expectedErr, err)
}
