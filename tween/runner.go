package tween

// Runner is a tween with its value type erased, as held by a Driver or an
// Updater. *Instance[T] implements it for every T.
type Runner interface {
	Step(d Delta) bool
	Schedule() error
	Cancel() bool
	FastForward()
	State() State
	Validate() error
	Timing() Core
}

var _ Runner = (*Instance[float64])(nil)
