package subprocess

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/promptwire/script-sdk-go/internal/config"
	"github.com/promptwire/script-sdk-go/internal/errors"
)

const (
	// maxStderrBufferSize caps the stderr buffer. Stderr streaming continues
	// indefinitely (the callback receives all lines), but the buffer stops
	// growing after this limit to prevent unbounded memory usage.
	maxStderrBufferSize = 10 * 1024 * 1024 // 10MB
)

// Launch spawns the script at the given, already-resolved path.
//
// All three standard streams are piped. The child is placed in a dedicated
// process group so that it and any descendants it spawns can later be
// terminated atomically by signalling the negative process-group id.
//
// Any failure (missing interpreter, permission denied, resource exhaustion)
// is a terminal *errors.LaunchError: no session is created and no retry is
// attempted.
func Launch(ctx context.Context, scriptPath string, opts *config.Options) (*Session, error) {
	if opts == nil {
		opts = &config.Options{}
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	log = log.With("component", "launcher")

	if opts.SettingsPath != "" {
		settings, err := config.LoadSettings(opts.SettingsPath)
		if err != nil {
			log.Error("Failed to load settings file", "path", opts.SettingsPath, "error", err)

			return nil, &errors.LaunchError{Path: scriptPath, Err: err}
		}

		opts.ApplySettings(settings)
	}

	log.Info("Launching script", "script", scriptPath, "interpreter", opts.Interpreter)

	var cmd *exec.Cmd
	if opts.Interpreter != "" {
		//nolint:gosec // G204: launching user-authored scripts is the point
		cmd = exec.CommandContext(ctx, opts.Interpreter, scriptPath)
	} else {
		//nolint:gosec // G204: launching user-authored scripts is the point
		cmd = exec.CommandContext(ctx, scriptPath)
	}

	cwd := opts.Cwd
	if cwd == "" {
		var err error

		cwd, err = os.Getwd()
		if err != nil {
			return nil, &errors.LaunchError{Path: scriptPath, Err: fmt.Errorf("get working directory: %w", err)}
		}
	}

	cmd.Dir = cwd
	cmd.Env = buildEnvironment(opts)

	// New process group, so Kill(-pid) reaches the script plus anything it
	// spawned. Without this, descendants outlive cancellation as orphans.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Error("Failed to create stdin pipe", "error", err)

		return nil, &errors.LaunchError{Path: scriptPath, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Error("Failed to create stdout pipe", "error", err)

		return nil, &errors.LaunchError{Path: scriptPath, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		log.Error("Failed to create stderr pipe", "error", err)

		return nil, &errors.LaunchError{Path: scriptPath, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		log.Error("Failed to start script process", "error", err)

		return nil, &errors.LaunchError{Path: scriptPath, Err: fmt.Errorf("start process: %w", err)}
	}

	pid := cmd.Process.Pid
	log.Info("Script process started", "pid", pid)

	sess := &Session{
		log:    log,
		cmd:    cmd,
		pid:    pid,
		reaper: NewReaper(log, pid),
		stdin:  stdin,
		stdout: stdout,
	}

	sess.stderrWg.Add(1)
	go func() {
		defer sess.stderrWg.Done()
		sess.streamStderr(stderr, opts.Stderr)
	}()

	return sess, nil
}

// streamStderr buffers stderr for exit diagnostics (capped) and forwards
// each line to the optional callback. The goroutine ends when the process
// closes its stderr; Wait blocks on it before reaping.
func (s *Session) streamStderr(stderr io.Reader, callback func(string)) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()

		s.stderrMu.Lock()

		if s.stderrBuf.Len() < maxStderrBufferSize {
			if s.stderrBuf.Len() > 0 {
				s.stderrBuf.WriteString("\n")
			}

			s.stderrBuf.WriteString(line)
		}

		s.stderrMu.Unlock()

		if callback != nil {
			callback(line)
		}
	}

	if err := scanner.Err(); err != nil {
		s.log.Debug("Stderr scanner error", "error", err)
	}
}

// buildEnvironment merges the host environment with option-provided
// variables, option values last so they win.
func buildEnvironment(opts *config.Options) []string {
	env := os.Environ()
	for k, v := range opts.Env {
		env = append(env, k+"="+v)
	}

	return env
}
