// Package session runs the concurrent half of a script session: the reader
// and writer workers that own the child's pipes, the ordered queues between
// them and the UI, and the controller's prompt state machine.
//
// The surrounding UI talks only to the Controller: Poll drains everything the
// reader has queued without blocking, and Submit enqueues a response without
// blocking. The UI thread never reads or writes the child process directly.
//
// Ordering is FIFO in both directions and nothing more: the transport does
// not pair a submit with a specific still-open prompt. When several prompts
// arrive unanswered, the controller's active prompt is simply the most recent
// one ("last wins").
package session
