package broadcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonotonicClock_FollowsWallClock(t *testing.T) {
	req := require.New(t)

	// Given a wall clock that advances between calls
	current := time.Unix(1700000000, 0)
	clock := &MonotonicClock{now: func() time.Time { return current }}

	first := clock.Next()
	current = current.Add(5 * time.Millisecond)
	second := clock.Next()

	// Then issued timestamps equal the wall clock readings
	req.Equal(int64(1700000000_000000000), first.UnixNano())
	req.Equal(int64(1700000000_005000000), second.UnixNano())
}

func TestMonotonicClock_FallbackWhenClockStalls(t *testing.T) {
	req := require.New(t)

	// Given a wall clock frozen at one instant
	frozen := time.Unix(1700000000, 42)
	clock := &MonotonicClock{now: func() time.Time { return frozen }}

	// When issuing faster than the clock resolution
	first := clock.Next()
	second := clock.Next()
	third := clock.Next()

	// Then every timestamp is last+1, strictly increasing
	req.Equal(first.UnixNano()+1, second.UnixNano())
	req.Equal(second.UnixNano()+1, third.UnixNano())
}

func TestMonotonicClock_NeverGoesBackwards(t *testing.T) {
	req := require.New(t)

	// Given a wall clock that jumps backwards
	current := time.Unix(1700000000, 0)
	clock := &MonotonicClock{now: func() time.Time { return current }}

	first := clock.Next()
	current = current.Add(-time.Second)
	second := clock.Next()

	// Then the issued value still increases
	req.Greater(second.UnixNano(), first.UnixNano())
}

func TestMonotonicClock_BurstIsStrictlyIncreasing(t *testing.T) {
	req := require.New(t)
	clock := NewMonotonicClock()

	last := int64(0)
	for i := 0; i < 10_000; i++ {
		ts := clock.Next().UnixNano()
		req.Greater(ts, last)
		last = ts
	}
}
