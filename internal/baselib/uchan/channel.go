package uchan

import (
	"sync"

	"github.com/roasbeef/uchan/internal/baselib/queue"
)

// Chan is an unbounded, thread-safe FIFO with a closable lifecycle. The zero
// value is not usable; construct one with New.
//
// Payloads may legitimately be the zero value of T — callers must rely on
// the returned ok/had-value bool, never on the payload itself, to tell apart
// "got a real value" from "end of stream".
type Chan[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	q      *queue.Ring[T]
	closed bool
}

// New constructs an empty, open Chan.
func New[T any](opts ...queue.Option) *Chan[T] {
	c := &Chan[T]{q: queue.New[T](opts...)}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Send enqueues x and wakes any blocked receivers. Broadcast (rather than
// Signal) is required so a receiver that is also a losing Select helper gets
// a chance to re-check the session before anyone decides it should consume.
//
// Send panics if the channel has already been closed; sending after close is
// a programmer error, not a runtime condition to recover from.
func (c *Chan[T]) Send(x T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("uchan: send on closed channel")
	}

	c.q.Put(x)
	c.cond.Broadcast()
}

// Receive blocks until a value is available or the channel is closed and
// drained. It returns (value, true) for a delivered value, or (zero, false)
// once the channel is closed and empty — the latter never blocks again on
// subsequent calls.
func (c *Chan[T]) Receive() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.q.Empty() && !c.closed {
		c.cond.Wait()
	}

	if !c.q.Empty() {
		return c.q.Get(), true
	}

	var zero T
	return zero, false
}

// TryReceive returns immediately: (value, true) if something was queued,
// otherwise (zero, false). It never consults the closed flag, so it cannot
// distinguish "empty but still open" from "closed and drained" — callers
// that need that distinction use Receive.
func (c *Chan[T]) TryReceive() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.q.Empty() {
		return c.q.Get(), true
	}

	var zero T
	return zero, false
}

// Len returns the number of values currently queued. The result is stale the
// instant it is returned; it exists for diagnostics, not synchronization.
func (c *Chan[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.q.Len()
}

// Close marks the channel closed, forbidding further Send calls and waking
// every blocked receiver. Values already queued remain receivable; once they
// are drained, Receive stops blocking for good. Closing an already-closed
// channel is a programmer error and panics.
func (c *Chan[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("uchan: channel closed twice")
	}

	c.closed = true
	c.cond.Broadcast()

	log.Debugf("uchan: channel closed with %d queued value(s)", c.q.Len())
}

// Dispose closes the channel if it is not already closed. Unlike Close, a
// second call is a harmless no-op — it exists for deferred cleanup at the
// end of a channel's lifetime, mirroring the reference design's "free
// performs an implicit close first" destruction semantics.
func (c *Chan[T]) Dispose() {
	c.mu.Lock()
	alreadyClosed := c.closed
	if !alreadyClosed {
		c.closed = true
		c.cond.Broadcast()
	}
	c.mu.Unlock()
}
