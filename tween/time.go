package tween

import "time"

// Delta carries the two elapsed-time readings of a frame, in seconds.
type Delta struct {
	// Scaled follows the host's time scale and pause state.
	Scaled float64
	// Unscaled is the wall-clock frame time.
	Unscaled float64
}

// Uniform returns a delta whose scaled and unscaled readings are both dt.
func Uniform(dt float64) Delta {
	return Delta{Scaled: dt, Unscaled: dt}
}

// For returns the reading a tween of the given kind advances by.
func (d Delta) For(kind TimeKind) float64 {
	if kind == TimeUnscaled {
		return d.Unscaled
	}
	return d.Scaled
}

// Clock turns wall-clock readings into frame deltas. Scale multiplies the
// scaled reading; while Paused the scaled reading is zero and only unscaled
// tweens advance.
type Clock struct {
	Scale  float64
	Paused bool

	// Now is the time source, replaceable in tests.
	Now func() time.Time

	last time.Time
}

// NewClock creates a clock running at normal speed on system time.
func NewClock() *Clock {
	return &Clock{
		Scale: 1,
		Now:   time.Now,
	}
}

// Tick returns the delta since the previous Tick. The first call returns a
// zero delta.
func (c *Clock) Tick() Delta {
	now := c.Now()
	if c.last.IsZero() {
		c.last = now
		return Delta{}
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.Scaled(dt)
}

// Scaled builds the delta for an unscaled frame time of dt seconds.
func (c *Clock) Scaled(dt float64) Delta {
	d := Delta{Unscaled: dt}
	if !c.Paused {
		d.Scaled = dt * c.Scale
	}
	return d
}
