package session

import "sync"

// fifo is an ordered, unbounded queue with exactly one producer and one
// consumer per direction of the session. It is unbounded on purpose: Push
// must never block (it runs on the UI tick and on the reader's hot loop),
// and a bounded buffer would either block or drop messages, violating the
// no-loss ordering guarantee.
type fifo[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []T
	closed   bool
}

func newFIFO[T any]() *fifo[T] {
	q := &fifo[T]{}
	q.nonEmpty = sync.NewCond(&q.mu)

	return q
}

// Push appends an item without blocking. Returns false once the queue is
// closed; the item is dropped.
func (q *fifo[T]) Push(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.items = append(q.items, v)
	q.nonEmpty.Signal()

	return true
}

// Pop blocks until an item is available, returning false only after the
// queue is closed and fully drained.
func (q *fifo[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.nonEmpty.Wait()
	}

	if len(q.items) == 0 {
		var zero T

		return zero, false
	}

	v := q.items[0]
	q.items = q.items[1:]

	return v, true
}

// Drain returns everything currently queued, in order, without blocking.
func (q *fifo[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil

	return items
}

// Close stops further pushes and wakes any blocked consumer. Items already
// queued stay retrievable via Pop and Drain. Safe to call repeatedly.
func (q *fifo[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	q.nonEmpty.Broadcast()
}
