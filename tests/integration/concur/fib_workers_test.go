// Package concur_test exercises uchan and countdown together the way the
// design spec's end-to-end scenarios describe, as black-box tests that use
// only the packages' exported APIs.
package concur_test

import (
	"sync"
	"testing"
	"time"

	"github.com/roasbeef/uchan/internal/baselib/countdown"
	"github.com/roasbeef/uchan/internal/baselib/uchan"
	"github.com/stretchr/testify/require"
)

// fib uses fib(0) = fib(1) = 1, so fib(37) = 39088169.
func fib(n int) int {
	if n < 2 {
		return 1
	}
	a, b := 1, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// TestParallelFibonacciWorkers covers scenario E3: a producer enqueues the
// same task ten times then closes; ten workers compute fib(n) for each task
// and send the result onward, with the countdown latch gating which worker
// is responsible for closing the shared result channel.
func TestParallelFibonacciWorkers(t *testing.T) {
	const (
		numTasks   = 10
		numWorkers = 10
		n          = 37
		want       = 39088169
	)

	tasks := uchan.New[int]()
	results := uchan.New[int]()
	gate, err := countdown.New(numTasks).Unpack()
	require.NoError(t, err)

	for i := 0; i < numTasks; i++ {
		tasks.Send(n)
	}
	tasks.Close()

	var wg sync.WaitGroup
	var closeOnce sync.Once
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				task, ok := tasks.Receive()
				if !ok {
					return
				}

				results.Send(fib(task))
				gate.Dec()

				if gate.Finished() {
					closeOnce.Do(results.Close)
				}
			}
		}()
	}

	got := make([]int, 0, numTasks)
	for i := 0; i < numTasks; i++ {
		v, ok := results.Receive()
		require.True(t, ok)
		got = append(got, v)
	}

	_, ok := results.Receive()
	require.False(t, ok)

	require.Len(t, got, numTasks)
	for _, v := range got {
		require.Equal(t, want, v)
	}

	wg.Wait()
}

// TestCountdownGate covers scenario E6: a countdown initialized to 1000 is
// decremented 125 times each by 8 workers with interleaved sleeps; a waiter
// must return exactly once, after all 1000 decrements are observed.
func TestCountdownGate(t *testing.T) {
	const (
		initial    = 1000
		numWorkers = 8
		perWorker  = 125
	)

	gate, err := countdown.New(initial).Unpack()
	require.NoError(t, err)

	waitReturned := make(chan struct{})
	go func() {
		gate.Wait()
		close(waitReturned)
	}()

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if (worker+j)%17 == 0 {
					time.Sleep(time.Microsecond)
				}
				gate.Dec()
			}
		}(i)
	}
	wg.Wait()

	select {
	case <-waitReturned:
	case <-time.After(5 * time.Second):
		t.Fatal("countdown waiter did not return after all decrements")
	}

	require.LessOrEqual(t, gate.Get(), int64(0))
}
