// Package countdown implements a reusable integer latch: a counter that
// broadcasts to any blocked waiters once its value falls to zero or below.
package countdown

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ErrNonPositiveInitial is returned by New when constructed with an initial
// count that is not strictly positive.
var ErrNonPositiveInitial = fmt.Errorf("countdown: initial count must be > 0")

// Countdown is a thread-safe, multi-waiter latch. The zero value is not
// usable; construct one with New.
type Countdown struct {
	mu     sync.Mutex
	cond   *sync.Cond
	count  atomic.Int64
	closed atomic.Bool
}

// New constructs a Countdown initialized to n, which must be strictly
// positive. Unlike the fatal contract violations elsewhere in this toolkit,
// a bad initial value here is a recoverable construction error, so the
// caller gets it back as a Result instead of a panic.
func New(n int64) fn.Result[*Countdown] {
	if n <= 0 {
		return fn.Err[*Countdown](ErrNonPositiveInitial)
	}

	c := &Countdown{}
	c.cond = sync.NewCond(&c.mu)
	c.count.Store(n)

	return fn.Ok(c)
}

// Get returns the current count without acquiring the mutex.
func (c *Countdown) Get() int64 {
	return c.count.Load()
}

// Finished reports whether the count has fallen to zero or below.
func (c *Countdown) Finished() bool {
	return c.count.Load() <= 0
}

// Add adjusts the count by delta, broadcasting to waiters if the
// post-adjustment count is now <= 0. delta may be negative; over-decrementing
// below zero is permitted and treated as "finished".
func (c *Countdown) Add(delta int64) {
	newVal := c.count.Add(delta)
	if newVal <= 0 {
		c.broadcast()
	}
}

// Sub decrements the count by delta. See Add.
func (c *Countdown) Sub(delta int64) {
	c.Add(-delta)
}

// Inc increments the count by one.
func (c *Countdown) Inc() {
	c.Add(1)
}

// Dec decrements the count by one, broadcasting if it reaches zero or below.
func (c *Countdown) Dec() {
	c.Add(-1)
}

// Set stores i as the new count, broadcasting immediately if i <= 0.
func (c *Countdown) Set(i int64) {
	c.count.Store(i)
	if i <= 0 {
		c.broadcast()
	}
}

// Wait blocks until the count is <= 0. It is safe to call from any number of
// goroutines concurrently; all of them are released once the count reaches
// zero or below. Spurious wakeups are tolerated by the re-check loop.
func (c *Countdown) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.count.Load() > 0 && !c.closed.Load() {
		c.cond.Wait()
	}
}

// Close performs a final broadcast, releasing any goroutine blocked in Wait
// regardless of the current count. Callers must not use the Countdown after
// calling Close.
func (c *Countdown) Close() {
	c.closed.Store(true)
	log.Debugf("countdown: closed with count=%d", c.count.Load())
	c.broadcast()
}

// broadcast acquires the mutex purely to serialize with Wait's lost-wakeup
// check; sync.Cond.Broadcast itself needs no lock held, but taking it here
// closes the window where Wait could observe count>0, be preempted before
// calling cond.Wait, and then miss this broadcast.
func (c *Countdown) broadcast() {
	c.mu.Lock()
	c.cond.Broadcast()
	c.mu.Unlock()
}
