package session

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"

	sdkerrors "github.com/promptwire/script-sdk-go/internal/errors"
	"github.com/promptwire/script-sdk-go/internal/protocol"
)

// readerWorker owns the child's output stream. It decodes one message per
// line and pushes the UI-facing projection onto the inbound queue. It is the
// queue's only producer, so the controller observes messages in exactly the
// order the script emitted them.
type readerWorker struct {
	log     *slog.Logger
	src     io.Reader
	inbound *fifo[protocol.PromptMessage]
	bufSize int

	// exitInfo reaps the process after end-of-stream and reports the exit
	// code and stderr tail for the synthesized ScriptExit.
	exitInfo func() (*int, string)
}

// run loops over blocking line reads until the script closes its output or
// an explicit exit message arrives. Exactly one ScriptExit is pushed per
// session; a malformed line never ends the loop.
func (w *readerWorker) run() error {
	defer w.inbound.Close()

	scanner := bufio.NewScanner(w.src)
	buf := make([]byte, w.bufSize)
	scanner.Buffer(buf, w.bufSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		msg, err := protocol.Decode(line)
		if err != nil {
			if stderrors.Is(err, sdkerrors.ErrUnknownMessageType) {
				w.log.Debug("Skipping unrecognized message variant", "line", string(line))
			} else {
				w.log.Warn("Malformed line from script, skipping", "error", err)
			}

			continue
		}

		event := w.translate(msg)
		if event == nil {
			continue
		}

		if _, sessionOver := event.(*protocol.ScriptExit); sessionOver {
			w.inbound.Push(event)
			w.log.Debug("Script requested exit, reader stopping")

			return nil
		}

		if !w.inbound.Push(event) {
			w.log.Debug("Inbound queue closed, reader stopping")

			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		w.log.Debug("Read error on script output", "error", err)
	}

	// End of stream without an explicit exit: synthesize exactly one
	// ScriptExit so the controller always learns the session is over.
	code, stderr := w.exitInfo()
	w.inbound.Push(&protocol.ScriptExit{Code: code, Stderr: stderr})
	w.log.Debug("Script output closed, reader stopping")

	return nil
}

// translate projects a wire message onto its UI-facing event.
// Host->script variants arriving from the script are dropped.
func (w *readerWorker) translate(msg protocol.Message) protocol.PromptMessage {
	switch msg := msg.(type) {
	case *protocol.Arg:
		return &protocol.ShowArg{ID: msg.ID, Placeholder: msg.Placeholder, Choices: msg.Choices}
	case *protocol.Div:
		return &protocol.ShowDiv{ID: msg.ID, HTML: msg.HTML, Tailwind: msg.Tailwind}
	case *protocol.Hide:
		return &protocol.HideWindow{}
	case *protocol.Browse:
		return &protocol.OpenBrowser{URL: msg.URL}
	case *protocol.Exit:
		return &protocol.ScriptExit{Code: msg.Code, Message: msg.Message}
	default:
		w.log.Debug("Dropping host-bound message from script", "message_type", msg.MessageType())

		return nil
	}
}
