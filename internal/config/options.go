// Package config provides configuration types for the script session SDK.
package config

import "log/slog"

const (
	// DefaultMaxBufferSize is the maximum buffer size for reading script
	// output lines. Scripts emitting HTML panels can produce long lines.
	DefaultMaxBufferSize = 1024 * 1024 // 1MB
)

// Options carries everything the launcher and session need. Populated via
// functional options in the root package, optionally seeded from a settings
// file (see Settings).
type Options struct {
	// Logger receives debug, info, warn, and error messages during session
	// operations. If nil, logging is disabled.
	Logger *slog.Logger

	// Interpreter, when set, runs the script as `interpreter <script>`
	// instead of executing the script file directly.
	Interpreter string

	// Env provides additional environment variables for the script process.
	Env map[string]string

	// Cwd is the working directory for the script process.
	// Defaults to the host's working directory.
	Cwd string

	// Stderr, when set, receives each stderr line the script emits.
	Stderr func(string)

	// SettingsPath points to an optional YAML settings file providing
	// defaults for Interpreter, Env, and Cwd. Explicit options win.
	SettingsPath string

	// MaxBufferSize overrides the maximum bytes for one script output line.
	MaxBufferSize int
}

// BufferSize returns the configured line buffer size, or the default.
func (o *Options) BufferSize() int {
	if o.MaxBufferSize > 0 {
		return o.MaxBufferSize
	}

	return DefaultMaxBufferSize
}
