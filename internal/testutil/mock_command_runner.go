package testutil

import (
	"context"
	"strings"

	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.CommandRunner = (*MockCommandRunner)(nil)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Execute(ctx context.Context, spec domain.RunSpec) (*domain.RunResult, error) {
	callArgs := m.Called(ctx, spec)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).(*domain.RunResult), callArgs.Error(1)
}

func (m *MockCommandRunner) LookPath(name string) (string, error) {
	callArgs := m.Called(name)
	return callArgs.String(0), callArgs.Error(1)
}

// ScriptIs matches a RunSpec whose script renders to exactly script.
func ScriptIs(script string) interface{} {
	return mock.MatchedBy(func(spec domain.RunSpec) bool {
		return spec.Script.String() == script
	})
}

// ScriptContains matches a RunSpec whose script contains fragment.
func ScriptContains(fragment string) interface{} {
	return mock.MatchedBy(func(spec domain.RunSpec) bool {
		return strings.Contains(spec.Script.String(), fragment)
	})
}
