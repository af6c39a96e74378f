package errors

import (
	"errors"
	"fmt"
)

// ScriptSDKError is the base interface for all SDK errors.
type ScriptSDKError interface {
	error
	IsScriptSDKError() bool
}

// Compile-time verification that all error types implement ScriptSDKError.
var (
	_ ScriptSDKError = (*LaunchError)(nil)
	_ ScriptSDKError = (*DecodeError)(nil)
	_ ScriptSDKError = (*ProcessError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionClosed indicates the session has been torn down and cannot be reused.
	ErrSessionClosed = errors.New("session closed: sessions are single-use, launch a new one")

	// ErrAlreadySplit indicates Session.Split was called more than once.
	ErrAlreadySplit = errors.New("session pipes already split")

	// ErrUnknownMessageType indicates the message type is not recognized by the protocol.
	// The reader skips these messages rather than treating them as fatal.
	ErrUnknownMessageType = errors.New("unknown message type")
)

// LaunchError indicates the script process failed to spawn.
// Spawn failures are terminal: no session is created and no retry is attempted.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch script %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// IsScriptSDKError implements ScriptSDKError.
func (e *LaunchError) IsScriptSDKError() bool { return true }

// DecodeError indicates a line from the script failed to decode.
// This error preserves the raw line that failed to parse. A DecodeError is
// always recoverable: the reader logs it and continues with the next line.
type DecodeError struct {
	RawLine string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode message line: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsScriptSDKError implements ScriptSDKError.
func (e *DecodeError) IsScriptSDKError() bool { return true }

// ProcessError reports that the script process exited abnormally.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("script process failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("script process failed (exit %d): %s", e.ExitCode, e.Stderr)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsScriptSDKError implements ScriptSDKError.
func (e *ProcessError) IsScriptSDKError() bool { return true }
