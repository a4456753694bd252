package handler

import (
	"bytes"
	"io"
	"testing"

	"vien/internal/cli/output"
	"vien/internal/core"
	"vien/internal/core/domain"
	"vien/internal/testutil"

	"github.com/charmbracelet/log"
)

var testRef = domain.NewEnvironmentRef("/work/project", "/home/user/.vien")

type mocks struct {
	commandRunner    *testutil.MockCommandRunner
	fileSystem       *testutil.MockFileSystem
	configRepository *testutil.MockConfigRepository
	terminalInput    *testutil.MockTerminalInput
}

func newMocks() mocks {
	return mocks{
		commandRunner:    new(testutil.MockCommandRunner),
		fileSystem:       new(testutil.MockFileSystem),
		configRepository: new(testutil.MockConfigRepository),
		terminalInput:    new(testutil.MockTerminalInput),
	}
}

func (m mocks) environmentManager() core.EnvironmentManager {
	resolver := core.ProvideInterpreterResolver(m.commandRunner, m.fileSystem, m.configRepository)
	return core.ProvideEnvironmentManager(testRef, m.fileSystem, m.commandRunner, resolver, log.New(io.Discard))
}

// captureOutput collects status output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(output.SetWriter(&buf))
	return &buf
}
