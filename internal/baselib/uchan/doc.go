// Package uchan implements an unbounded, multi-producer/multi-consumer,
// closable FIFO channel, plus a multi-way receive-select over any number of
// such channels.
//
// Chan[T] is backed by a queue.Ring[T] guarded by a sync.Mutex and a
// sync.Cond signaling "data or closed". Select implements the two-phase
// algorithm described in the package's design notes: an opportunistic
// non-blocking scan over a random permutation of candidates, falling back to
// a blocked arbitration among helper goroutines when nothing is immediately
// ready.
//
// Lock order: the two mutexes are never held together. While holding a
// Chan's mutex, a helper touches session state only through atomic loads
// and a CompareAndSwap on the winner slot; it releases the channel mutex
// before acquiring the session mutex.
package uchan
