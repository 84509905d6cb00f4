package tween

import "fmt"

// State is the lifecycle position of a tween.
//
//	Idle ──Schedule()──► Scheduled ──► Delayed ──► Running ──► Completed
//	                                       │           │
//	                                       └───────────┴──Cancel()──► Canceled
type State uint8

const (
	StateIdle State = iota
	StateScheduled
	StateDelayed
	StateRunning
	StateCompleted
	StateCanceled
)

// Terminal reports whether no further ticks can change the tween.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCanceled
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateDelayed:
		return "delayed"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DelayMode controls whether the start delay eats into the playback duration.
type DelayMode uint8

const (
	// DelayModeNone keeps counting the delay toward the total duration, so a
	// delayed tween finishes at the same moment an undelayed one would.
	DelayModeNone DelayMode = iota
	// DelayModeAffectOnDuration starts playback time at zero once the delay
	// has elapsed, so the tween plays for its full duration after the delay.
	DelayModeAffectOnDuration
)

func (m DelayMode) String() string {
	switch m {
	case DelayModeNone:
		return "none"
	case DelayModeAffectOnDuration:
		return "affect-on-duration"
	default:
		return fmt.Sprintf("DelayMode(%d)", int(m))
	}
}

// LoopType selects how consecutive loops map time to progress.
type LoopType uint8

const (
	// LoopRestart plays every loop from 0 to 1.
	LoopRestart LoopType = iota
	// LoopYoyo plays odd-indexed loops backwards, from 1 to 0.
	LoopYoyo
)

func (l LoopType) String() string {
	switch l {
	case LoopRestart:
		return "restart"
	case LoopYoyo:
		return "yoyo"
	default:
		return fmt.Sprintf("LoopType(%d)", int(l))
	}
}

// TimeKind selects which delta of a frame advances the tween.
type TimeKind uint8

const (
	// TimeScaled follows the driver's time scale and pause state.
	TimeScaled TimeKind = iota
	// TimeUnscaled follows wall-clock frame time.
	TimeUnscaled
)

func (k TimeKind) String() string {
	switch k {
	case TimeScaled:
		return "scaled"
	case TimeUnscaled:
		return "unscaled"
	default:
		return fmt.Sprintf("TimeKind(%d)", int(k))
	}
}
