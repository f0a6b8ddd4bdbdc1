package uchan

import (
	"math/rand"
	"sync"
	"sync/atomic"
)

// selectSession is the transient coordination record for one Select call.
// Exactly one candidate's helper goroutine may claim the winner slot; every
// other helper must observe that and exit without consuming a value.
type selectSession[T any] struct {
	chans []*Chan[T]

	// winner is -1 until a helper claims it via CompareAndSwap. It is read
	// with plain atomic loads from inside a helper's wait loop specifically
	// so that loop never needs to acquire the session mutex while holding
	// its channel's mutex (the forbidden lock order).
	winner atomic.Int32

	mu       sync.Mutex
	cond     *sync.Cond
	value    T
	hasValue bool

	wg sync.WaitGroup
}

func newSelectSession[T any](chans []*Chan[T]) *selectSession[T] {
	s := &selectSession[T]{chans: chans}
	s.winner.Store(-1)
	s.cond = sync.NewCond(&s.mu)
	s.wg.Add(len(chans))
	return s
}

func (s *selectSession[T]) decided() bool {
	return s.winner.Load() != -1
}

// claim attempts to become the winner with the given candidate index.
// Returns true only for the single goroutine whose CompareAndSwap succeeds.
func (s *selectSession[T]) claim(idx int) bool {
	return s.winner.CompareAndSwap(-1, int32(idx))
}

// deliver records the winning outcome and wakes the Select caller. Must only
// be invoked by the goroutine that won claim().
func (s *selectSession[T]) deliver(v T, ok bool) {
	s.mu.Lock()
	s.value = v
	s.hasValue = ok
	s.cond.Broadcast()
	s.mu.Unlock()
}

// wakeOthers broadcasts every candidate channel's own condition except the
// winner's, so any helper still parked in its channel's cond.Wait notices
// the session has been decided and exits. This is the cooperative substitute
// for the reference implementation's asynchronous thread cancellation (see
// the package design notes): Go has no equivalent to pthread_cancel, so
// losers are woken via the same broadcast mechanism sends already use.
func (s *selectSession[T]) wakeOthers(except int) {
	for i, ch := range s.chans {
		if i == except {
			continue
		}

		ch.mu.Lock()
		ch.cond.Broadcast()
		ch.mu.Unlock()
	}
}

// Select blocks until exactly one of chans delivers a value, then returns
// that channel's index along with the received (value, had-value) pair. It
// requires at least one candidate.
//
// Phase A does an opportunistic non-blocking scan over a random permutation
// of the candidates so that, when multiple channels are simultaneously
// ready, no single channel is favored across repeated calls. Phase B spawns
// one helper goroutine per candidate to race a blocking receive; the first
// to observe data (or a closed-and-drained channel) wins, and every other
// helper is cancelled cooperatively before Select returns.
func Select[T any](chans ...*Chan[T]) (int, T, bool) {
	if len(chans) == 0 {
		panic("uchan: Select requires at least one channel")
	}

	if idx, val, ok := selectPhaseA(chans); ok {
		return idx, val, true
	}

	return selectPhaseB(chans)
}

// selectPhaseA performs the non-blocking scan. It returns ok=false if no
// candidate had a value ready.
func selectPhaseA[T any](chans []*Chan[T]) (int, T, bool) {
	for _, i := range rand.Perm(len(chans)) {
		if v, ok := chans[i].TryReceive(); ok {
			return i, v, true
		}
	}

	var zero T
	return 0, zero, false
}

// selectPhaseB runs the blocked-arbitration fallback: one helper goroutine
// per candidate, the first to claim the session wins, the rest are woken and
// exit without consuming anything.
func selectPhaseB[T any](chans []*Chan[T]) (int, T, bool) {
	sess := newSelectSession(chans)

	for i, ch := range chans {
		go ch.selectHelper(sess, i)
	}

	sess.mu.Lock()
	for !sess.decided() {
		sess.cond.Wait()
	}
	sess.mu.Unlock()

	idx := int(sess.winner.Load())

	// Join every helper before reading the outcome: the winner is decided
	// at claim time but only calls deliver afterwards, and it calls deliver
	// before it exits. Once this Wait returns, sess.value and sess.hasValue
	// are set and no goroutine still references sess.
	sess.wg.Wait()

	sess.mu.Lock()
	val := sess.value
	ok := sess.hasValue
	sess.mu.Unlock()

	return idx, val, ok
}

// selectHelper is the body of one Select candidate's helper goroutine. It
// blocks on c's own condition until data arrives, the channel closes, or the
// session is decided by some other candidate — whichever happens first.
func (c *Chan[T]) selectHelper(sess *selectSession[T], idx int) {
	defer sess.wg.Done()

	c.mu.Lock()
	for c.q.Empty() && !c.closed && !sess.decided() {
		c.cond.Wait()
	}

	if sess.decided() {
		// Either we woke because another candidate won (wakeOthers), or it
		// was decided between our wait and this check. Either way we must
		// not touch our queue.
		c.mu.Unlock()
		return
	}

	// Claim while still holding c.mu, so the "is there a value" check and
	// the pop are atomic with respect to every other Select session racing
	// this same channel. claim is a lock-free atomic CAS, so calling it
	// here never violates the session-mutex-then-channel-mutex lock order.
	// Without this, a helper could see a value, unlock, win its own
	// session's CAS, then find the value already taken by a helper from a
	// different concurrent Select — wrongly reporting (zero, false) as if
	// the channel were closed and drained.
	if !sess.claim(idx) {
		// Lost the race to claim to some other path; don't consume.
		c.mu.Unlock()
		return
	}

	var (
		v     T
		ready bool
	)
	if !c.q.Empty() {
		v = c.q.Get()
		ready = true
	}
	c.mu.Unlock()

	// We won. Release the other candidates' helpers now that our own pop
	// (if any) is already done, so they don't sit blocked any longer than
	// necessary.
	sess.wakeOthers(idx)

	if !ready {
		// Closed-and-drained candidate won the race: legitimate end-of-
		// stream delivery, not an error.
		var zero T
		sess.deliver(zero, false)
		return
	}

	sess.deliver(v, true)
}
