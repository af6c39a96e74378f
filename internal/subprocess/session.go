package subprocess

import (
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	stderrors "errors"

	"github.com/promptwire/script-sdk-go/internal/errors"
)

// Session owns a live script process: its pid, its handle, and, before
// Split is called, exclusive ownership of the raw stdin/stdout pipes.
type Session struct {
	log    *slog.Logger
	cmd    *exec.Cmd
	pid    int
	reaper *Reaper

	mu     sync.Mutex
	stdin  io.WriteCloser
	stdout io.ReadCloser
	split  bool

	stderrMu  sync.Mutex
	stderrBuf strings.Builder
	stderrWg  sync.WaitGroup

	waitOnce sync.Once
	waitErr  error
}

// Pid returns the script's process id. It stays valid for cancellation
// tracking even before the session is split.
func (s *Session) Pid() int {
	return s.pid
}

// Split consumes the session's pipe ownership and hands the write half to
// the writer worker and the read half to the reader worker. It is a
// one-time operation: after it returns, no code path other than the two
// workers may touch the pipes. A second call returns ErrAlreadySplit.
func (s *Session) Split() (io.WriteCloser, io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.split {
		return nil, nil, errors.ErrAlreadySplit
	}

	s.split = true
	stdin, stdout := s.stdin, s.stdout
	s.stdin, s.stdout = nil, nil

	return stdin, stdout, nil
}

// Wait reaps the script process and reports how it exited. An abnormal exit
// is returned as a *errors.ProcessError carrying the exit code and the
// buffered stderr tail. Wait is idempotent; every call after the first
// returns the memoized result.
func (s *Session) Wait() error {
	s.waitOnce.Do(func() {
		// Stderr reads must complete before Wait per os/exec pipe rules.
		s.stderrWg.Wait()

		err := s.cmd.Wait()
		if err == nil {
			s.log.Debug("Script process exited cleanly", "pid", s.pid)

			return
		}

		exitCode := 0
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		stderr := s.StderrTail()
		s.log.Debug("Script process exited with error",
			"pid", s.pid, "exit_code", exitCode, "stderr", stderr)

		s.waitErr = &errors.ProcessError{
			ExitCode: exitCode,
			Stderr:   stderr,
			Err:      err,
		}
	})

	return s.waitErr
}

// StderrTail returns the buffered stderr output captured so far.
func (s *Session) StderrTail() string {
	s.stderrMu.Lock()
	defer s.stderrMu.Unlock()

	return s.stderrBuf.String()
}

// Kill terminates the script's process group. Safe to call repeatedly.
func (s *Session) Kill() error {
	return s.reaper.Kill()
}

// Alive reports whether the script process is still running.
func (s *Session) Alive() bool {
	return s.reaper.Alive()
}
