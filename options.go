package scriptsdk

import (
	"log/slog"

	"github.com/promptwire/script-sdk-go/internal/config"
)

// Option configures a launch using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithInterpreter runs the script through the given interpreter binary
// (e.g. node, deno) instead of executing the script file directly.
func WithInterpreter(path string) Option {
	return func(o *config.Options) {
		o.Interpreter = path
	}
}

// WithEnv provides additional environment variables for the script process.
func WithEnv(env map[string]string) Option {
	return func(o *config.Options) {
		o.Env = env
	}
}

// WithCwd sets the working directory for the script process.
func WithCwd(cwd string) Option {
	return func(o *config.Options) {
		o.Cwd = cwd
	}
}

// WithStderr sets a callback function receiving each stderr line the
// script emits.
func WithStderr(handler func(string)) Option {
	return func(o *config.Options) {
		o.Stderr = handler
	}
}

// WithSettings points at a YAML settings file supplying launch defaults
// (interpreter, env, cwd). Explicit options win over file values.
func WithSettings(path string) Option {
	return func(o *config.Options) {
		o.SettingsPath = path
	}
}

// WithMaxBufferSize sets the maximum bytes for one script output line.
func WithMaxBufferSize(size int) Option {
	return func(o *config.Options) {
		o.MaxBufferSize = size
	}
}
