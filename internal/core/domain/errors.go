package domain

import (
	"fmt"
	"time"
)

// ErrorKind classifies user-facing environment failures.
type ErrorKind string

const (
	KindEnvironmentAlreadyExists  ErrorKind = "environment already exists"
	KindEnvironmentMissing        ErrorKind = "environment does not exist"
	KindEnvironmentCreationFailed ErrorKind = "failed to create environment"
	KindEnvironmentClearFailed    ErrorKind = "failed to remove environment"
	KindInterpreterNotResolvable  ErrorKind = "cannot resolve interpreter"
)

// Error is a user-facing failure of an environment operation.
// Errors match by Kind with errors.Is, so the sentinels below can be used as targets.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

var (
	ErrEnvironmentAlreadyExists  = &Error{Kind: KindEnvironmentAlreadyExists}
	ErrEnvironmentMissing        = &Error{Kind: KindEnvironmentMissing}
	ErrEnvironmentCreationFailed = &Error{Kind: KindEnvironmentCreationFailed}
	ErrEnvironmentClearFailed    = &Error{Kind: KindEnvironmentClearFailed}
	ErrInterpreterNotResolvable  = &Error{Kind: KindInterpreterNotResolvable}
)

func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// InvalidRunSpecError reports a RunSpec with conflicting stream configuration or an unparsable script.
type InvalidRunSpecError struct {
	Reason string
}

func (e *InvalidRunSpecError) Error() string {
	return fmt.Sprintf("invalid run spec: %s", e.Reason)
}

// ProcessTimeoutError carries whatever output had been captured when the timeout fired.
type ProcessTimeoutError struct {
	Timeout time.Duration
	Stdout  []byte
	Stderr  []byte
}

func (e *ProcessTimeoutError) Error() string {
	return fmt.Sprintf("process timed out after %s", e.Timeout)
}

// ProcessNotTerminatedError means a waited-for process reported no exit status.
// It is a defect, not a recoverable condition.
type ProcessNotTerminatedError struct {
	Pid int
}

func (e *ProcessNotTerminatedError) Error() string {
	return fmt.Sprintf("process %d was not terminated", e.Pid)
}
