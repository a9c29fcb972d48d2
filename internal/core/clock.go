package core

import "time"

// Duration is a monotonic timestamp measured from an arbitrary clock origin.
type Duration = time.Duration

// Clock is a monotonic time source. Only differences between readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to. Used by tests and replays.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set jumps to an absolute reading if it is not in the past.
func (c *ManualClock) Set(t time.Duration) {
	if t > c.now {
		c.now = t
	}
}

// Seconds converts a monotonic duration to float seconds.
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}
