package uchan

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSelectNonBlockingPath covers scenario E4: one of three channels
// already holds a value before Select is called; Select must return that
// channel's index and value without touching the other two.
func TestSelectNonBlockingPath(t *testing.T) {
	chans := []*Chan[int]{New[int](), New[int](), New[int]()}
	chans[1].Send(42)

	idx, val, ok := Select(chans...)
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, 42, val)

	require.Equal(t, 0, chans[0].Len())
	require.Equal(t, 0, chans[2].Len())
}

// TestSelectBlockingPath covers scenario E5: three channels, each fed after
// a staggered delay; Select must return the first one to deliver, and the
// later sends on the other channels must still be observable afterward.
func TestSelectBlockingPath(t *testing.T) {
	chans := []*Chan[int]{New[int](), New[int](), New[int]()}
	delays := []time.Duration{
		30 * time.Millisecond,
		5 * time.Millisecond,
		60 * time.Millisecond,
	}

	var wg sync.WaitGroup
	for i, d := range delays {
		wg.Add(1)
		go func(i int, d time.Duration) {
			defer wg.Done()
			time.Sleep(d)
			chans[i].Send(10*(i+1) + 0)
		}(i, d)
	}

	idx, val, ok := Select(chans...)
	require.True(t, ok)
	require.Equal(t, 1, idx, "the channel with the shortest delay should win")
	require.Equal(t, 20, val)

	wg.Wait()

	v, ok := chans[0].Receive()
	require.True(t, ok)
	require.Equal(t, 10, v)

	v, ok = chans[2].Receive()
	require.True(t, ok)
	require.Equal(t, 30, v)
}

// TestSelectClosedCandidateCanWin exercises the closed-and-drained delivery
// path through Phase B: a closed, empty channel is a legitimate winner that
// reports (zero, false).
func TestSelectClosedCandidateCanWin(t *testing.T) {
	a := New[int]()
	b := New[int]()
	a.Close()

	idx, val, ok := Select(a, b)
	require.Equal(t, 0, idx)
	require.False(t, ok)
	require.Zero(t, val)
}

// TestSelectExclusivity checks testable property 6: across many concurrent
// Selects racing the same pool of channels, each delivered value is
// observed by exactly one Select call, and no value is ever lost.
func TestSelectExclusivity(t *testing.T) {
	const numChans = 4
	const numValues = 200

	chans := make([]*Chan[int], numChans)
	for i := range chans {
		chans[i] = New[int]()
	}

	go func() {
		for i := 0; i < numValues; i++ {
			chans[i%numChans].Send(i)
		}
	}()

	seen := make(map[int]bool)
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < numValues; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, val, ok := Select(chans...)
			if !ok {
				return
			}
			mu.Lock()
			require.False(t, seen[val], "value %d delivered more than once", val)
			seen[val] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, numValues)
}
