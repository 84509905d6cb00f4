package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/nanotween/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePresets(t *testing.T) {
	presets, err := loadPresets("presets.yaml")
	require.NoError(t, err)
	require.Len(t, presets, 4)
	assert.Equal(t, "blink", presets[0].Name)

	presets, err = loadPresets("")
	assert.NoError(t, err)
	assert.Nil(t, presets)
}

func TestSpawnerKeepsTweensAlive(t *testing.T) {
	driver := tween.NewDriver()
	offscreen := tween.NewDriver()
	offscreen.SetActive(false)

	s := &spawner{
		driver:        driver,
		offscreen:     offscreen,
		values:        make([]float64, 16),
		inactiveEvery: 5,
	}
	for slot := range 16 {
		s.spawn(slot)
	}
	assert.Equal(t, 16, driver.Len())
	assert.Positive(t, offscreen.Stats().FastForwarded)
	assert.Zero(t, offscreen.Len())

	for range 200 {
		driver.Once(0.1)
	}

	assert.Positive(t, driver.Stats().Completed)
	assert.Equal(t, 16, driver.Len())
}

func TestSpawnerEveryTweenOffscreen(t *testing.T) {
	driver := tween.NewDriver()
	offscreen := tween.NewDriver()
	offscreen.SetActive(false)

	s := &spawner{
		driver:        driver,
		offscreen:     offscreen,
		values:        make([]float64, 4),
		inactiveEvery: 1,
	}
	for slot := range 4 {
		s.spawn(slot)
	}

	assert.Equal(t, int64(4), offscreen.Stats().FastForwarded)
	assert.Equal(t, 4, driver.Len())
	assert.Equal(t, 8, s.spawned)

	for range 200 {
		driver.Once(0.1)
	}
	assert.Equal(t, 4, driver.Len())
	assert.Positive(t, driver.Stats().Completed)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, time.Duration(2), s.P99)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:       time.Second,
		Tweens:         10,
		TotalUpdates:   60,
		TotalTime:      time.Second,
		GCPauseMetrics: true,
		Driver:         tween.DriverStats{Completed: 120},
	}
	r.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Live Tweens:** 10")
	assert.Contains(t, buf.String(), "**Completions Per Second:** 120")
	assert.Contains(t, buf.String(), "GC Pause Durations")
}
