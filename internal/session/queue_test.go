package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFIFO_OrderedPushPop(t *testing.T) {
	q := newFIFO[int]()

	for i := 0; i < 100; i++ {
		require.True(t, q.Push(i))
	}

	for i := 0; i < 100; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestFIFO_DrainIsNonBlockingAndOrdered(t *testing.T) {
	q := newFIFO[string]()

	require.Empty(t, q.Drain())

	q.Push("a")
	q.Push("b")
	q.Push("c")

	require.Equal(t, []string{"a", "b", "c"}, q.Drain())
	require.Empty(t, q.Drain())
}

func TestFIFO_PopBlocksUntilPush(t *testing.T) {
	q := newFIFO[int]()

	got := make(chan int, 1)

	go func() {
		v, ok := q.Pop()
		if ok {
			got <- v
		}
	}()

	// Give the consumer a moment to block.
	time.Sleep(10 * time.Millisecond)
	q.Push(42)

	select {
	case v := <-got:
		require.Equal(t, 42, v)
	case <-time.After(2 * time.Second):
		t.Fatal("Pop did not wake on Push")
	}
}

func TestFIFO_CloseWakesBlockedConsumer(t *testing.T) {
	q := newFIFO[int]()

	done := make(chan bool, 1)

	go func() {
		_, ok := q.Pop()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Pop did not wake on Close")
	}
}

func TestFIFO_CloseDropsNewPushesKeepsPending(t *testing.T) {
	q := newFIFO[int]()

	require.True(t, q.Push(1))
	q.Close()
	require.False(t, q.Push(2))

	// Pending items stay retrievable after close.
	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = q.Pop()
	require.False(t, ok)
}

func TestFIFO_CloseIsIdempotent(t *testing.T) {
	q := newFIFO[int]()
	q.Close()
	q.Close()
	require.False(t, q.Push(1))
}

func TestFIFO_SingleProducerSingleConsumer(t *testing.T) {
	// Run with: go test -race
	q := newFIFO[int]()

	const n = 10_000

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(i)
		}

		q.Close()
	}()

	var received []int

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			v, ok := q.Pop()
			if !ok {
				return
			}

			received = append(received, v)
		}
	}()

	wg.Wait()

	require.Len(t, received, n)
	for i, v := range received {
		require.Equal(t, i, v)
	}
}
