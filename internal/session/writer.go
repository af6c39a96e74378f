package session

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/promptwire/script-sdk-go/internal/protocol"
)

// writerWorker owns the child's input stream. It blocks on the outbound
// queue, encodes each message, and writes the line followed by an explicit
// flush. The script is typically blocked synchronously waiting for that
// exact line before it can produce its next output, so the flush is a
// correctness requirement, not a performance detail.
type writerWorker struct {
	log      *slog.Logger
	dst      io.WriteCloser
	outbound *fifo[protocol.Message]
}

// run drains the outbound queue until it is closed or a write fails. Either
// way it closes the queue and the stream on the way out, so later submits
// are silently dropped and a well-behaved script sees EOF on its input.
// Write failures are logged, never retried; the pipe is not resurrected.
func (w *writerWorker) run() error {
	defer w.outbound.Close()
	defer func() {
		if err := w.dst.Close(); err != nil {
			w.log.Debug("Closing script input failed", "error", err)
		}
	}()

	bw := bufio.NewWriter(w.dst)

	for {
		msg, ok := w.outbound.Pop()
		if !ok {
			w.log.Debug("Outbound queue closed, writer stopping")

			return nil
		}

		line, err := protocol.Encode(msg)
		if err != nil {
			w.log.Warn("Dropping unencodable message", "error", err)

			continue
		}

		if _, err := bw.Write(line); err != nil {
			w.log.Debug("Write to script failed, writer stopping", "error", err)

			return nil
		}

		if err := bw.WriteByte('\n'); err != nil {
			w.log.Debug("Write to script failed, writer stopping", "error", err)

			return nil
		}

		if err := bw.Flush(); err != nil {
			w.log.Debug("Flush to script failed, writer stopping", "error", err)

			return nil
		}

		w.log.Debug("Sent message to script", "message_type", msg.MessageType())
	}
}
