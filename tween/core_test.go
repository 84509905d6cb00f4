package tween_test

import (
	"math"
	"testing"

	"github.com/plus3/nanotween/tween"
	"github.com/stretchr/testify/assert"
)

func TestCoreDerived(t *testing.T) {
	core := tween.NewCore()
	core.LoopDuration = 2
	core.LoopCount = 3
	core.LoopType = tween.LoopYoyo

	assert.Equal(t, 6.0, core.TotalDuration())

	tests := []struct {
		time     float64
		index    int
		reverse  bool
		loopTime float64
		progress float64
	}{
		{0, 0, false, 0, 0},
		{0.5, 0, false, 0.5, 0.25},
		{2, 1, true, 0, 1},
		{3.5, 1, true, 1.5, 0.25},
		{4.5, 2, false, 0.5, 0.25},
	}

	for _, tt := range tests {
		core.Time = tt.time
		assert.Equal(t, tt.index, core.CurrentLoopIndex(), "index at %v", tt.time)
		assert.Equal(t, tt.reverse, core.IsReverseLoop(), "reverse at %v", tt.time)
		assert.Equal(t, tt.loopTime, core.CurrentLoopTime(), "loop time at %v", tt.time)
		assert.Equal(t, tt.progress, core.Progress(), "progress at %v", tt.time)
	}
}

func TestCoreFinalReverse(t *testing.T) {
	core := tween.NewCore()
	for count := 1; count <= 6; count++ {
		core.LoopCount = count

		core.LoopType = tween.LoopRestart
		assert.False(t, core.FinalReverse())

		core.LoopType = tween.LoopYoyo
		assert.Equal(t, count%2 == 1, core.FinalReverse(), "count %d", count)
	}
}

func TestCoreValidate(t *testing.T) {
	assert.NoError(t, (&tween.Core{LoopDuration: 0.1, LoopCount: 1, PlaybackSpeed: 1}).Validate())

	tests := map[string]func(c *tween.Core){
		"zero duration":     func(c *tween.Core) { c.LoopDuration = 0 },
		"negative duration": func(c *tween.Core) { c.LoopDuration = -1 },
		"nan duration":      func(c *tween.Core) { c.LoopDuration = math.NaN() },
		"infinite duration": func(c *tween.Core) { c.LoopDuration = math.Inf(1) },
		"zero loops":        func(c *tween.Core) { c.LoopCount = 0 },
		"negative delay":    func(c *tween.Core) { c.Delay = -0.5 },
		"zero speed":        func(c *tween.Core) { c.PlaybackSpeed = 0 },
		"negative speed":    func(c *tween.Core) { c.PlaybackSpeed = -1 },
		"unknown loop type": func(c *tween.Core) { c.LoopType = 9 },
		"unknown time kind": func(c *tween.Core) { c.TimeKind = 9 },
		"unknown delay":     func(c *tween.Core) { c.DelayMode = 9 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			core := tween.NewCore()
			mutate(&core)
			assert.ErrorIs(t, core.Validate(), tween.ErrInvalidConfig)
		})
	}
}

func TestInstanceValidate(t *testing.T) {
	tw := tween.New(0.0, 1.0, nil, func(float64) {})
	assert.ErrorIs(t, tw.Validate(), tween.ErrNilCallback)

	tw = tween.New(0.0, 1.0, tween.LerpFloat64, nil)
	assert.ErrorIs(t, tw.Validate(), tween.ErrNilCallback)

	tw = tween.New(0.0, 1.0, tween.LerpFloat64, func(float64) {}, tween.WithLoops(0, tween.LoopRestart))
	assert.ErrorIs(t, tw.Validate(), tween.ErrInvalidConfig)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "delayed", tween.StateDelayed.String())
	assert.Equal(t, "State(42)", tween.State(42).String())
	assert.Equal(t, "yoyo", tween.LoopYoyo.String())
	assert.Equal(t, "affect-on-duration", tween.DelayModeAffectOnDuration.String())
	assert.Equal(t, "unscaled", tween.TimeUnscaled.String())

	assert.True(t, tween.StateCanceled.Terminal())
	assert.True(t, tween.StateCompleted.Terminal())
	assert.False(t, tween.StateRunning.Terminal())
}

func TestOptions(t *testing.T) {
	tw := tween.New(0.0, 1.0, tween.LerpFloat64, func(float64) {},
		tween.WithDuration(2),
		tween.WithDelay(0.5, tween.DelayModeNone),
		tween.WithDelayMode(tween.DelayModeAffectOnDuration),
		tween.WithLoops(3, tween.LoopYoyo),
		tween.WithSpeed(1.5),
		tween.WithTimeKind(tween.TimeUnscaled),
	)

	core := tw.Timing()
	assert.Equal(t, tween.StateIdle, core.State)
	assert.Equal(t, 2.0, core.LoopDuration)
	assert.Equal(t, 0.5, core.Delay)
	assert.Equal(t, tween.DelayModeAffectOnDuration, core.DelayMode)
	assert.Equal(t, 3, core.LoopCount)
	assert.Equal(t, tween.LoopYoyo, core.LoopType)
	assert.Equal(t, 1.5, core.PlaybackSpeed)
	assert.Equal(t, tween.TimeUnscaled, core.TimeKind)
	assert.NoError(t, tw.Validate())
}
