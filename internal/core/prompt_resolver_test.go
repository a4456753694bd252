package core

import (
	"context"
	"errors"
	"io"
	"testing"

	"vien/internal/core/domain"
	"vien/internal/testutil"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPromptResolver(commandRunner *testutil.MockCommandRunner, goos string) PromptResolver {
	resolver := ProvidePromptResolver(commandRunner, log.New(io.Discard))
	resolver.goos = goos
	return resolver
}

func TestPromptResolver_BasePrompt_PrefersInheritedPrompt(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	sut := newPromptResolver(commandRunner, "linux")

	prompt := sut.BasePrompt(context.Background(), `[\u] `)

	assert.Equal(t, `[\u] `, prompt)
	commandRunner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPromptResolver_BasePrompt_BSDDefault(t *testing.T) {
	for _, goos := range []string{"darwin", "freebsd"} {
		commandRunner := new(testutil.MockCommandRunner)
		sut := newPromptResolver(commandRunner, goos)

		assert.Equal(t, BSDDefaultPrompt, sut.BasePrompt(context.Background(), ""))
		commandRunner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestPromptResolver_BasePrompt_QueriesInteractiveShell(t *testing.T) {
	commandRunner := new(testutil.MockCommandRunner)
	commandRunner.On("Execute", mock.Anything, mock.MatchedBy(func(spec domain.RunSpec) bool {
		return spec.CaptureOutput && spec.Input != nil && spec.Timeout > 0 &&
			spec.Script.String() == `exec bash -i -c "printf \"%s%s\" \"__vien_ps1__\" \"\$PS1\""`
	})).Return(&domain.RunResult{
		ExitCode: 0,
		Stdout:   []byte("welcome from bashrc\n__vien_ps1__\\u@\\h:\\w\\$ "),
	}, nil)
	sut := newPromptResolver(commandRunner, "linux")

	prompt := sut.BasePrompt(context.Background(), "")

	assert.Equal(t, `\u@\h:\w\$ `, prompt)
	commandRunner.AssertExpectations(t)
}

func TestPromptResolver_BasePrompt_FallsBack(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.RunResult
		err    error
	}{
		{"runner error", nil, errors.New("bash missing")},
		{"timeout", nil, &domain.ProcessTimeoutError{}},
		{"non-zero exit", &domain.RunResult{ExitCode: 1}, nil},
		{"no sentinel", &domain.RunResult{Stdout: []byte("noise")}, nil},
		{"empty prompt", &domain.RunResult{Stdout: []byte("__vien_ps1__")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commandRunner := new(testutil.MockCommandRunner)
			if tt.result == nil {
				commandRunner.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				commandRunner.On("Execute", mock.Anything, mock.Anything).Return(tt.result, tt.err)
			}
			sut := newPromptResolver(commandRunner, "linux")

			assert.Equal(t, FallbackPrompt, sut.BasePrompt(context.Background(), ""))
		})
	}
}

func TestPromptResolver_BasePrompt_RealShellIsPlausible(t *testing.T) {
	runner := newBashRunner(t)
	sut := ProvidePromptResolver(runner, log.New(io.Discard))
	sut.goos = "linux"

	prompt := sut.BasePrompt(context.Background(), "")

	assert.NotEmpty(t, prompt)
}
