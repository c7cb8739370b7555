package broadcast

import "time"

// MonotonicClock issues strictly increasing nanosecond timestamps.
// When the wall clock has not advanced since the previous call, it issues
// last+1 instead: under sustained bursts the issued values drift ahead of
// real time, but ordering is the contract here, not wall-clock fidelity.
//
// Next does not lock anything itself. The Broadcaster only ever calls it
// from inside its own critical section, so a single caller at a time is
// guaranteed by construction.
type MonotonicClock struct {
	now       func() time.Time
	lastNanos int64
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

// Next returns a timestamp strictly greater than every previous one.
func (c *MonotonicClock) Next() time.Time {
	ns := c.now().UnixNano()
	if ns <= c.lastNanos {
		ns = c.lastNanos + 1
	}
	c.lastNanos = ns
	return time.Unix(0, ns).UTC()
}
