package tween

import "time"

// DriverStats provides statistics about a driver's execution.
type DriverStats struct {
	Frames int64
	Active int

	Started       int64
	Completed     int64
	Canceled      int64
	FastForwarded int64

	MinFrame   time.Duration
	MaxFrame   time.Duration
	AvgFrame   time.Duration
	LastFrame  time.Duration
	TotalFrame time.Duration
}

type driverStatsInternal struct {
	frames        int64
	started       int64
	completed     int64
	canceled      int64
	fastForwarded int64

	minFrame   time.Duration
	maxFrame   time.Duration
	lastFrame  time.Duration
	totalFrame time.Duration
}

func newDriverStats() driverStatsInternal {
	return driverStatsInternal{
		minFrame: time.Duration(1<<63 - 1),
	}
}

func (s *driverStatsInternal) recordFrame(duration time.Duration) {
	s.frames++
	s.lastFrame = duration
	s.totalFrame += duration

	if duration < s.minFrame {
		s.minFrame = duration
	}
	if duration > s.maxFrame {
		s.maxFrame = duration
	}
}

func (s *driverStatsInternal) recordDone(state State) {
	switch state {
	case StateCompleted:
		s.completed++
	case StateCanceled:
		s.canceled++
	}
}

func (s *driverStatsInternal) snapshot(active int) *DriverStats {
	stats := &DriverStats{
		Frames:        s.frames,
		Active:        active,
		Started:       s.started,
		Completed:     s.completed,
		Canceled:      s.canceled,
		FastForwarded: s.fastForwarded,
		MaxFrame:      s.maxFrame,
		LastFrame:     s.lastFrame,
		TotalFrame:    s.totalFrame,
	}
	if s.frames > 0 {
		stats.MinFrame = s.minFrame
		stats.AvgFrame = s.totalFrame / time.Duration(s.frames)
	}
	return stats
}
