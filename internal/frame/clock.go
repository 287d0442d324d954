package frame

import "time"

// Clock reports elapsed time since its origin
type Clock interface {
	Now() time.Duration
}

// MonotonicClock follows the wall clock and ignores pause
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock starts a clock at zero
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now returns the time since the clock was created
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ScaledClock advances at Scale times the wall clock. A scale of zero pauses it.
type ScaledClock struct {
	now     func() time.Time
	last    time.Time
	elapsed time.Duration
	scale   float64
}

// NewScaledClock starts a clock at zero with scale 1. now may be nil.
func NewScaledClock(now func() time.Time) *ScaledClock {
	if now == nil {
		now = time.Now
	}
	return &ScaledClock{now: now, last: now(), scale: 1}
}

// Now returns the scaled time since the clock was created
func (c *ScaledClock) Now() time.Duration {
	c.advance()
	return c.elapsed
}

// SetScale changes the rate. Negative values are treated as zero.
func (c *ScaledClock) SetScale(s float64) {
	c.advance()
	c.scale = max(s, 0)
}

// Scale returns the current rate
func (c *ScaledClock) Scale() float64 {
	return c.scale
}

// Paused reports whether the clock is stopped
func (c *ScaledClock) Paused() bool {
	return c.scale == 0
}

func (c *ScaledClock) advance() {
	t := c.now()
	c.elapsed += time.Duration(float64(t.Sub(c.last)) * c.scale)
	c.last = t
}

// ManualClock only moves when told to
type ManualClock struct {
	t time.Duration
}

// Now returns the current time
func (c *ManualClock) Now() time.Duration {
	return c.t
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.t += d
}
