package subprocess

import (
	"fmt"
	"log/slog"
	"sync"
	"syscall"
)

// Reaper forcefully terminates a script's process group.
//
// The pid is held in a take-once slot: the first Kill empties the slot before
// signalling, so two concurrent cancellations cannot race to signal a pid the
// kernel may have already reused. A second Kill is a safe no-op.
type Reaper struct {
	log *slog.Logger

	mu  sync.Mutex
	pid int // 0 once taken
}

// NewReaper creates a reaper for the given process-group leader pid.
func NewReaper(log *slog.Logger, pid int) *Reaper {
	return &Reaper{
		log: log.With("component", "reaper"),
		pid: pid,
	}
}

// Kill sends SIGKILL to the entire process group by signalling the negative
// pid. The first call takes the pid slot; subsequent calls return nil
// without signalling. An error from the kill call (process group already
// gone) is returned for the caller to log and ignore; it is never fatal.
func (r *Reaper) Kill() error {
	r.mu.Lock()
	pid := r.pid
	r.pid = 0
	r.mu.Unlock()

	if pid == 0 {
		r.log.Debug("Kill skipped: pid slot already taken")

		return nil
	}

	r.log.Debug("Killing script process group", "pid", pid)

	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil {
		return fmt.Errorf("kill process group %d: %w", pid, err)
	}

	return nil
}

// Alive reports whether the pid slot is still held and the process exists.
// This is a best-effort liveness probe using signal 0; callers needing a
// hard guarantee must wait for the process themselves.
func (r *Reaper) Alive() bool {
	r.mu.Lock()
	pid := r.pid
	r.mu.Unlock()

	if pid == 0 {
		return false
	}

	return syscall.Kill(pid, 0) == nil
}
