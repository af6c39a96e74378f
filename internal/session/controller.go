package session

import (
	stderrors "errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	sdkerrors "github.com/promptwire/script-sdk-go/internal/errors"
	"github.com/promptwire/script-sdk-go/internal/protocol"
)

const (
	// closeGracePeriod is how long Close waits for the script to exit on its
	// own after its input is closed, before falling back to Cancel.
	closeGracePeriod = 5 * time.Second

	// exitReapGracePeriod is how long the reader's end-of-stream path waits
	// to reap the process for exit diagnostics. A script can close its
	// output and keep running; the synthesized ScriptExit must not wait on
	// it.
	exitReapGracePeriod = time.Second
)

// Process is the minimal surface the controller needs from a launched
// script. It is satisfied by subprocess.Session and by test fakes.
type Process interface {
	// Pid returns the process id, valid for liveness tracking.
	Pid() int

	// Split hands over exclusive ownership of the child's pipes exactly once.
	Split() (io.WriteCloser, io.ReadCloser, error)

	// Wait reaps the process; idempotent.
	Wait() error

	// Kill terminates the whole process group; the first call takes the pid
	// slot, later calls are no-ops.
	Kill() error

	// Alive is a best-effort probe that the process still exists.
	Alive() bool
}

// promptState is the controller's view of what the UI should be showing.
type promptState int

const (
	// stateIdle means no session, or the session ended.
	stateIdle promptState = iota
	// statePrompting means the last drained prompt is still on screen.
	statePrompting
)

// Controller is the sole component the surrounding UI talks to. It owns both
// communication queues, runs the prompt state machine, and tears the session
// down on cancellation or script exit.
//
// Poll and Submit never block: the UI's render loop only drains and enqueues.
type Controller struct {
	log  *slog.Logger
	id   string
	proc Process

	inbound  *fifo[protocol.PromptMessage]
	outbound *fifo[protocol.Message]

	workers     errgroup.Group
	workersDone chan struct{}

	closeOnce sync.Once
	done      chan struct{}

	mu       sync.Mutex
	state    promptState
	promptID string
}

// New splits the process's pipes and starts the two session workers. After
// this point nothing but the workers may touch the pipes.
func New(log *slog.Logger, proc Process, bufSize int) (*Controller, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := ulid.Make().String()
	log = log.With("component", "session", "session_id", id, "pid", proc.Pid())

	stdin, stdout, err := proc.Split()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		log:         log,
		id:          id,
		proc:        proc,
		inbound:     newFIFO[protocol.PromptMessage](),
		outbound:    newFIFO[protocol.Message](),
		workersDone: make(chan struct{}),
		done:        make(chan struct{}),
	}

	reader := &readerWorker{
		log:      log,
		src:      stdout,
		inbound:  c.inbound,
		bufSize:  bufSize,
		exitInfo: c.exitInfo,
	}
	writer := &writerWorker{
		log:      log,
		dst:      stdin,
		outbound: c.outbound,
	}

	c.workers.Go(reader.run)
	c.workers.Go(writer.run)

	go func() {
		_ = c.workers.Wait()
		close(c.workersDone)
	}()

	log.Info("Session started")

	return c, nil
}

// ID returns the controller's session id, used in log attributes.
func (c *Controller) ID() string {
	return c.id
}

// Pid returns the script's process id.
func (c *Controller) Pid() int {
	return c.proc.Pid()
}

// Poll drains everything the reader has queued since the last call, in
// order, without blocking. Safe to call on every UI tick. Draining a
// ScriptExit tears the session down before Poll returns.
func (c *Controller) Poll() []protocol.PromptMessage {
	events := c.inbound.Drain()
	for _, event := range events {
		c.apply(event)
	}

	return events
}

// Submit enqueues the user's answer (or cancellation, value nil) for the
// prompt with the given id. It never blocks and performs no validation: the
// submit is transmitted unconditionally, whether or not a prompt with that
// id is open. Once the writer has died, submits are silently dropped.
//
// Submit deliberately does not change the controller's state: the visible
// prompt stays what it was until the script speaks again.
func (c *Controller) Submit(id string, value *string) {
	if !c.outbound.Push(&protocol.Submit{ID: id, Value: value}) {
		c.log.Debug("Submit dropped: no live writer", "prompt_id", id)
	}
}

// ActivePrompt returns the id of the prompt the UI should be showing, if
// any. With several prompts unanswered, this is the most recent one.
func (c *Controller) ActivePrompt() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.promptID, c.state == statePrompting
}

// IsRunning is a best-effort probe that the script process still exists.
// Callers that need a hard liveness guarantee must wait for the pid
// themselves.
func (c *Controller) IsRunning() bool {
	return c.proc.Alive()
}

// Done returns a channel closed when the session has been torn down.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Cancel ends the session immediately. It sends a best-effort exit message
// to the script, then kills the whole process group anyway (relying on a
// graceful exit alone would not be dependable if the script ignores or
// never reads it), then drops both queues. A second Cancel is a safe no-op.
func (c *Controller) Cancel() {
	code := 1
	message := "Cancelled by user"
	c.outbound.Push(&protocol.Exit{Code: &code, Message: &message})

	c.teardown()
}

// Close ends the session gracefully: it closes the script's input so a
// well-behaved script exits on its own, and falls back to Cancel if the
// script is still running after the grace period. Closing a session that
// was already torn down returns ErrSessionClosed.
func (c *Controller) Close() error {
	select {
	case <-c.done:
		return sdkerrors.ErrSessionClosed
	default:
	}

	c.log.Debug("Closing session")
	c.outbound.Close()

	select {
	case <-c.workersDone:
	case <-time.After(closeGracePeriod):
		c.log.Debug("Script did not exit after input close, cancelling")
	}

	c.Cancel()
	<-c.workersDone
	_ = c.proc.Wait()

	return nil
}

// apply advances the state machine for one drained event. State is driven
// purely by what arrives on the inbound queue; the controller never infers
// state from the absence of events.
func (c *Controller) apply(event protocol.PromptMessage) {
	switch event := event.(type) {
	case *protocol.ShowArg:
		c.setPrompt(event.ID)
	case *protocol.ShowDiv:
		c.setPrompt(event.ID)
	case *protocol.HideWindow:
		c.clearPrompt()
	case *protocol.OpenBrowser:
		// Not a view change: whatever prompt is on screen stays there.
	case *protocol.ScriptExit:
		c.clearPrompt()
		c.teardown()
	}
}

func (c *Controller) setPrompt(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = statePrompting
	c.promptID = id
}

func (c *Controller) clearPrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = stateIdle
	c.promptID = ""
}

// teardown kills the process group and drops both queues, causing both
// workers to observe closed streams and exit on their own. It runs exactly
// once; the kill on an already-exited process fails and is ignored.
func (c *Controller) teardown() {
	c.closeOnce.Do(func() {
		c.log.Debug("Tearing down session")

		if err := c.proc.Kill(); err != nil {
			c.log.Debug("Kill failed; process likely already gone", "error", err)
		}

		c.outbound.Close()
		c.inbound.Close()
		close(c.done)

		go func() {
			<-c.workersDone
			_ = c.proc.Wait()
			c.log.Info("Session torn down")
		}()
	})
}

// exitInfo reaps the process on behalf of the reader once the output stream
// ends, and extracts exit diagnostics for the synthesized ScriptExit. The
// reap is bounded: a script that closed its output but is still running
// yields a ScriptExit without diagnostics rather than stalling the reader.
func (c *Controller) exitInfo() (*int, string) {
	waited := make(chan error, 1)

	go func() {
		waited <- c.proc.Wait()
	}()

	var err error
	select {
	case err = <-waited:
	case <-time.After(exitReapGracePeriod):
		c.log.Debug("Script still running after closing its output, exit diagnostics unavailable")

		return nil, ""
	}

	if err == nil {
		return nil, ""
	}

	var procErr *sdkerrors.ProcessError
	if stderrors.As(err, &procErr) {
		code := procErr.ExitCode

		return &code, procErr.Stderr
	}

	c.log.Debug("Wait returned untyped error", "error", err)

	return nil, ""
}
