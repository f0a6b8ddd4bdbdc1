package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRingRoundTrip(t *testing.T) {
	r := New[int]()

	for i := 0; i < 10; i++ {
		require.Equal(t, i == 0, r.Empty())
		r.Put(i)
	}
	require.Equal(t, 10, r.Len())

	for i := 0; i < 10; i++ {
		require.Equal(t, i, r.Get())
	}
	require.True(t, r.Empty())
}

func TestRingGrowsAtCapacity(t *testing.T) {
	r := New[int](WithInitialCapacity(4))
	require.Equal(t, 4, r.Cap())

	for i := 0; i < 4; i++ {
		r.Put(i)
	}
	require.Equal(t, 4, r.Cap())

	r.Put(4)
	require.Equal(t, 8, r.Cap())
	require.Equal(t, 5, r.Len())

	for i := 0; i < 5; i++ {
		require.Equal(t, i, r.Get())
	}
}

func TestRingShrinksButNotBelowInitial(t *testing.T) {
	r := New[int](WithInitialCapacity(4))

	for i := 0; i < 100; i++ {
		r.Put(i)
	}
	require.Greater(t, r.Cap(), 4)

	for i := 0; i < 100; i++ {
		got := r.Get()
		require.Equal(t, i, got)
		require.GreaterOrEqual(t, r.Cap(), 4)
	}
	require.Equal(t, 4, r.Cap())
}

func TestRingGetOnEmptyPanics(t *testing.T) {
	r := New[int]()
	require.Panics(t, func() {
		r.Get()
	})
}

// TestRingRoundTripProperty checks testable property 2 from the design
// spec: putting a sequence S in order and then getting len(S) items
// reproduces S in order, for arbitrary sequences and initial capacities.
func TestRingRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initCap := rapid.IntRange(1, 16).Draw(t, "initCap")
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")

		r := New[int](WithInitialCapacity(initCap))
		for _, v := range values {
			r.Put(v)
		}

		got := make([]int, 0, len(values))
		for !r.Empty() {
			got = append(got, r.Get())
		}

		if len(got) != len(values) {
			t.Fatalf("length mismatch: got %d want %d", len(got), len(values))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("index %d: got %d want %d", i, got[i], values[i])
			}
		}
	})
}

// TestRingCapacityBoundsProperty checks testable property 7: capacity is
// always >= the configured initial capacity, and length is always in
// [0, capacity], across an arbitrary interleaving of puts and gets.
func TestRingCapacityBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initCap := rapid.IntRange(1, 32).Draw(t, "initCap")
		r := New[int](WithInitialCapacity(initCap))

		ops := rapid.SliceOfN(rapid.IntRange(0, 1), 0, 200).Draw(t, "ops")
		for _, op := range ops {
			if op == 0 || r.Empty() {
				r.Put(rapid.Int().Draw(t, "value"))
			} else {
				r.Get()
			}

			if r.Cap() < initCap {
				t.Fatalf("capacity %d fell below initial %d", r.Cap(), initCap)
			}
			if r.Len() < 0 || r.Len() > r.Cap() {
				t.Fatalf("length %d out of bounds for capacity %d", r.Len(), r.Cap())
			}
		}
	})
}
