package tween

import "errors"

var (
	// ErrInvalidConfig is returned when a tween's timing configuration breaks
	// the preconditions of the tick functions.
	ErrInvalidConfig = errors.New("tween: invalid configuration")

	// ErrNilCallback is returned when a required hook (Lerp or Apply) is missing.
	ErrNilCallback = errors.New("tween: required callback is nil")

	// ErrNotIdle is returned when a tween that was already handed to a driver
	// is started again.
	ErrNotIdle = errors.New("tween: tween is not idle")
)
