package command_runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"vien/internal/core/domain"
	"vien/internal/ports"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

const (
	defaultShell = "/bin/bash"
	// drainDelay bounds how long Wait keeps copying output after the child is gone.
	drainDelay = 500 * time.Millisecond
)

var _ ports.CommandRunner = (*OsCommandRunner)(nil)

// OsCommandRunner executes scripts under bash using os/exec.
type OsCommandRunner struct {
	logger *log.Logger
	// shell overrides the bash lookup, used by tests
	shell string
}

func ProvideOsCommandRunner(logger *log.Logger) *OsCommandRunner {
	return &OsCommandRunner{logger: logger}
}

func (r *OsCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Execute runs the script with "bash -c". The interpreter is always bash, never the
// ambient /bin/sh, which would reject "source" and process substitution.
func (r *OsCommandRunner) Execute(ctx context.Context, spec domain.RunSpec) (*domain.RunResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	shell, err := r.shellPath()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(shell, "-c", spec.Script.String())
	cmd.WaitDelay = drainDelay

	var stdinPipe io.WriteCloser
	switch {
	case spec.Input != nil:
		stdinPipe, err = cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to open stdin pipe: %w", err)
		}
	case spec.Stdin != nil:
		cmd.Stdin = spec.Stdin
	default:
		cmd.Stdin = os.Stdin
	}

	var stdout, stderr bytes.Buffer
	if spec.CaptureOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = writerOrDefault(spec.Stdout, os.Stdout)
		cmd.Stderr = writerOrDefault(spec.Stderr, os.Stderr)
	}

	r.logger.Debug("running script", "shell", shell, "script", spec.Script.String(),
		"inputDelay", spec.InputDelay, "timeout", spec.Timeout)

	if err := cmd.Start(); err != nil {
		if stdinPipe != nil {
			_ = stdinPipe.Close()
		}
		return nil, fmt.Errorf("failed to start %s: %w", shell, err)
	}

	exited := make(chan struct{})
	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
		close(exited)
	}()

	if stdinPipe != nil {
		go feedInput(stdinPipe, spec.Input, spec.InputDelay, exited, ctx.Done())
	}

	var timeout <-chan time.Time
	if spec.Timeout > 0 {
		timer := time.NewTimer(spec.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case err := <-waitErr:
		return r.completedResult(cmd, err, spec.CaptureOutput, &stdout, &stderr)
	case <-timeout:
		r.logger.Debug("script timed out, killing process", "pid", cmd.Process.Pid, "timeout", spec.Timeout)
		_ = cmd.Process.Kill()
		<-waitErr
		timeoutErr := &domain.ProcessTimeoutError{Timeout: spec.Timeout}
		if spec.CaptureOutput {
			timeoutErr.Stdout = bytes.Clone(stdout.Bytes())
			timeoutErr.Stderr = bytes.Clone(stderr.Bytes())
		}
		return nil, timeoutErr
	case <-ctx.Done():
		// Kill without draining; the waiter goroutine reaps the child.
		r.logger.Debug("script interrupted, killing process", "pid", cmd.Process.Pid)
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("script interrupted: %w", ctx.Err())
	}
}

func (r *OsCommandRunner) completedResult(
	cmd *exec.Cmd,
	waitErr error,
	captured bool,
	stdout, stderr *bytes.Buffer,
) (*domain.RunResult, error) {
	state := cmd.ProcessState
	if state == nil || !terminated(state) {
		return nil, &domain.ProcessNotTerminatedError{Pid: cmd.Process.Pid}
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) && !errors.Is(waitErr, exec.ErrWaitDelay) {
		return nil, fmt.Errorf("failed waiting for script: %w", waitErr)
	}

	result := &domain.RunResult{ExitCode: exitCode(state)}
	if captured {
		result.Stdout = stdout.Bytes()
		result.Stderr = stderr.Bytes()
	}
	if signal, ok := terminatingSignal(state); ok {
		r.logger.Debug("script killed by signal", "pid", cmd.Process.Pid, "signal", unix.SignalName(signal), "exitCode", result.ExitCode)
	} else {
		r.logger.Debug("script finished", "pid", cmd.Process.Pid, "exitCode", result.ExitCode)
	}
	return result, nil
}

func (r *OsCommandRunner) shellPath() (string, error) {
	if r.shell != "" {
		return r.shell, nil
	}
	if _, err := os.Stat(defaultShell); err == nil {
		return defaultShell, nil
	}
	path, err := exec.LookPath("bash")
	if err != nil {
		return "", fmt.Errorf("bash is required but was not found: %w", err)
	}
	return path, nil
}

// feedInput waits for delay, writes input and closes stdin. The wait is abandoned
// when the process exits or the caller gives up first.
func feedInput(stdin io.WriteCloser, input []byte, delay time.Duration, exited, cancelled <-chan struct{}) {
	defer stdin.Close()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-exited:
			return
		case <-cancelled:
			return
		}
	}
	// Write fails once the child is gone; nothing else would read the error.
	_, _ = stdin.Write(input)
}

func terminated(state *os.ProcessState) bool {
	if state.Exited() {
		return true
	}
	_, signaled := terminatingSignal(state)
	return signaled
}

func terminatingSignal(state *os.ProcessState) (syscall.Signal, bool) {
	status, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return 0, false
	}
	return status.Signal(), true
}

// exitCode follows the shell convention of 128+N for a child killed by signal N.
func exitCode(state *os.ProcessState) int {
	if signal, ok := terminatingSignal(state); ok {
		return 128 + int(signal)
	}
	return state.ExitCode()
}

func writerOrDefault(w io.Writer, fallback *os.File) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
