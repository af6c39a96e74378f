package scriptsdk

import "github.com/promptwire/script-sdk-go/internal/errors"

// Re-export error types from internal package

// LaunchError indicates the script process failed to spawn.
type LaunchError = errors.LaunchError

// DecodeError indicates a line from the script failed to decode.
type DecodeError = errors.DecodeError

// ProcessError indicates the script process exited abnormally.
type ProcessError = errors.ProcessError

// ScriptSDKError is the base interface for all SDK errors.
type ScriptSDKError = errors.ScriptSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionClosed indicates the session has been torn down and cannot be reused.
	ErrSessionClosed = errors.ErrSessionClosed

	// ErrAlreadySplit indicates a session's pipes were split more than once.
	ErrAlreadySplit = errors.ErrAlreadySplit

	// ErrUnknownMessageType indicates a message type not recognized by the protocol.
	ErrUnknownMessageType = errors.ErrUnknownMessageType
)
