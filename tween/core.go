package tween

import (
	"fmt"
	"math"
)

// Core holds the timing, looping and lifecycle state of a single tween.
// It carries no behavior beyond the derived calculations below; the tick
// functions in tick.go are the only code that mutates it.
type Core struct {
	// Time is the elapsed time since scheduling, in seconds of the selected
	// TimeKind. It only grows while the tween is delayed or running and is
	// clamped to TotalDuration on completion.
	Time float64

	Delay     float64
	DelayMode DelayMode

	// LoopDuration is the length of a single loop in seconds.
	LoopDuration float64
	LoopCount    int
	LoopType     LoopType

	PlaybackSpeed float64
	TimeKind      TimeKind

	State State
}

// NewCore returns a core for a single one-second forward loop at normal speed.
func NewCore() Core {
	return Core{
		LoopDuration:  1,
		LoopCount:     1,
		PlaybackSpeed: 1,
	}
}

// TotalDuration is the playback length of all loops together.
func (c *Core) TotalDuration() float64 {
	return c.LoopDuration * float64(c.LoopCount)
}

// CurrentLoopIndex returns the zero-based loop that Time falls into.
func (c *Core) CurrentLoopIndex() int {
	return int(math.Floor(c.Time / c.LoopDuration))
}

// IsReverseLoop reports whether the current loop plays backwards.
func (c *Core) IsReverseLoop() bool {
	return c.LoopType == LoopYoyo && c.CurrentLoopIndex()%2 == 1
}

// CurrentLoopTime returns the time elapsed inside the current loop.
func (c *Core) CurrentLoopTime() float64 {
	return math.Mod(c.Time, c.LoopDuration)
}

// Progress maps Time to the normalized position inside the current loop.
// Forward loops yield values in [0, 1), reverse loops in (0, 1].
func (c *Core) Progress() float64 {
	t := c.CurrentLoopTime() / c.LoopDuration
	if c.IsReverseLoop() {
		return 1 - t
	}
	return t
}

// FinalReverse reports whether a yoyo tween settles on its start value.
// It is IsReverseLoop evaluated at Time == TotalDuration, computed from the
// loop count alone so float error in Time cannot flip it.
func (c *Core) FinalReverse() bool {
	return c.LoopType == LoopYoyo && c.LoopCount%2 == 1
}

// Validate checks the configuration preconditions of the tick functions.
func (c *Core) Validate() error {
	switch {
	case !(c.LoopDuration > 0) || math.IsInf(c.LoopDuration, 0):
		return fmt.Errorf("%w: loop duration must be positive and finite, got %v", ErrInvalidConfig, c.LoopDuration)
	case c.LoopCount < 1:
		return fmt.Errorf("%w: loop count must be at least 1, got %d", ErrInvalidConfig, c.LoopCount)
	case !(c.Delay >= 0) || math.IsInf(c.Delay, 0):
		return fmt.Errorf("%w: delay must be non-negative and finite, got %v", ErrInvalidConfig, c.Delay)
	case !(c.PlaybackSpeed > 0) || math.IsInf(c.PlaybackSpeed, 0):
		return fmt.Errorf("%w: playback speed must be positive and finite, got %v", ErrInvalidConfig, c.PlaybackSpeed)
	case c.DelayMode > DelayModeAffectOnDuration:
		return fmt.Errorf("%w: unknown delay mode %v", ErrInvalidConfig, c.DelayMode)
	case c.LoopType > LoopYoyo:
		return fmt.Errorf("%w: unknown loop type %v", ErrInvalidConfig, c.LoopType)
	case c.TimeKind > TimeUnscaled:
		return fmt.Errorf("%w: unknown time kind %v", ErrInvalidConfig, c.TimeKind)
	}
	return nil
}
