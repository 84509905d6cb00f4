package tween_test

import (
	"testing"

	"github.com/plus3/nanotween/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleShapes(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		for _, h := range []tween.Handle{tween.Invalid, {}, tween.NewIDHandle(-1), tween.NewIDHandle(-7)} {
			assert.False(t, h.IsValid())
			assert.False(t, h.RunsOnDriver())
			assert.False(t, h.RunsAsUpdater())
			assert.Equal(t, -1, h.ID())
			assert.Nil(t, h.Owner())
			assert.Zero(t, h.Token())
		}
	})

	t.Run("id", func(t *testing.T) {
		h := tween.NewIDHandle(0)
		assert.True(t, h.IsValid())
		assert.True(t, h.RunsAsUpdater())
		assert.False(t, h.RunsOnDriver())
		assert.Equal(t, 0, h.ID())

		assert.Equal(t, 12, tween.NewIDHandle(12).ID())
	})

	t.Run("driver", func(t *testing.T) {
		driver := tween.NewDriver()
		h, err := driver.Start((&recorder{}).newTween())
		require.NoError(t, err)

		assert.True(t, h.IsValid())
		assert.True(t, h.RunsOnDriver())
		assert.False(t, h.RunsAsUpdater())
		assert.Equal(t, -1, h.ID())
		assert.Same(t, driver, h.Owner())
		assert.NotZero(t, h.Token())
	})
}

func TestCancelDispatch(t *testing.T) {
	driver := tween.NewDriver()
	updater := tween.NewUpdater()

	onDriver, err := driver.Start((&recorder{}).newTween())
	require.NoError(t, err)
	onUpdater, err := updater.Schedule((&recorder{}).newTween())
	require.NoError(t, err)

	assert.True(t, tween.Cancel(onDriver, updater))
	assert.True(t, tween.Cancel(onUpdater, updater))
	assert.False(t, tween.Cancel(onUpdater, updater), "already canceled")
	assert.False(t, tween.Cancel(tween.Invalid, updater))
	assert.False(t, tween.Cancel(tween.NewIDHandle(99), updater))
	assert.False(t, tween.Cancel(tween.NewIDHandle(0), nil))
}
