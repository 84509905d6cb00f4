package debugui

import (
	"testing"

	"github.com/plus3/nanotween/tween"
	"github.com/stretchr/testify/assert"
)

func TestDisplayProgress(t *testing.T) {
	core := tween.NewCore()
	core.Delay = 2
	core.LoopDuration = 4
	core.LoopCount = 2
	core.LoopType = tween.LoopYoyo

	core.State = tween.StateScheduled
	assert.Equal(t, float32(0), displayProgress(core))

	core.State = tween.StateDelayed
	core.Time = 0.5
	assert.Equal(t, float32(0.25), displayProgress(core))

	core.State = tween.StateRunning
	core.Time = 5
	assert.Equal(t, float32(0.75), displayProgress(core))
	assert.Equal(t, 2, loopNumber(core))

	core.State = tween.StateCompleted
	assert.Equal(t, float32(1), displayProgress(core))
	assert.Equal(t, 0, loopNumber(core))
}

func TestNewInspector(t *testing.T) {
	in := NewInspector(120, 50)
	assert.Len(t, in.frameHistory, 120)
	assert.Equal(t, 50, in.maxRows)
}
