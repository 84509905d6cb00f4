package tween

import "fmt"

// Instance is a schedulable tween of values of type T.
//
// From and To may be fixed up front or produced lazily by FromGetter and
// ToGetter. Getters run at most once, at the moment playback begins, so they
// capture the target's state at that time rather than at scheduling time.
//
// Lerp turns a pair of endpoints and an eased progress into a value; Apply
// writes that value to the target. Both are required. Ease is optional and
// defaults to linear progress.
type Instance[T any] struct {
	Core      Core
	Callbacks Callbacks

	From T
	To   T

	FromGetter func() T
	ToGetter   func() T

	Lerp  func(a, b T, t float64) T
	Ease  func(t float64) float64
	Apply func(v T)

	value    T
	resolved bool
}

// Option adjusts the timing or hooks of a tween before it is started.
type Option func(core *Core, callbacks *Callbacks)

// New creates an idle tween from from to to.
func New[T any](from, to T, lerp func(a, b T, t float64) T, apply func(T), opts ...Option) *Instance[T] {
	inst := &Instance[T]{
		Core:  NewCore(),
		From:  from,
		To:    to,
		Lerp:  lerp,
		Ease:  Linear,
		Apply: apply,
	}
	for _, opt := range opts {
		opt(&inst.Core, &inst.Callbacks)
	}
	return inst
}

// WithDuration sets the length of one loop in seconds.
func WithDuration(seconds float64) Option {
	return func(core *Core, _ *Callbacks) {
		core.LoopDuration = seconds
	}
}

// WithDelay sets the start delay in seconds and how it relates to the duration.
func WithDelay(seconds float64, mode DelayMode) Option {
	return func(core *Core, _ *Callbacks) {
		core.Delay = seconds
		core.DelayMode = mode
	}
}

// WithLoops sets the number of loops and how they are played.
func WithLoops(count int, loopType LoopType) Option {
	return func(core *Core, _ *Callbacks) {
		core.LoopCount = count
		core.LoopType = loopType
	}
}

// WithSpeed multiplies every delta fed to the tween.
func WithSpeed(speed float64) Option {
	return func(core *Core, _ *Callbacks) {
		core.PlaybackSpeed = speed
	}
}

// WithDelayMode changes how the delay relates to the duration without
// touching the delay itself.
func WithDelayMode(mode DelayMode) Option {
	return func(core *Core, _ *Callbacks) {
		core.DelayMode = mode
	}
}

// WithTimeKind selects the scaled or unscaled frame delta.
func WithTimeKind(kind TimeKind) Option {
	return func(core *Core, _ *Callbacks) {
		core.TimeKind = kind
	}
}

func OnStart(fn func()) Option {
	return func(_ *Core, callbacks *Callbacks) {
		callbacks.OnStart = fn
	}
}

func OnStartAfterDelay(fn func()) Option {
	return func(_ *Core, callbacks *Callbacks) {
		callbacks.OnStartAfterDelay = fn
	}
}

func OnComplete(fn func()) Option {
	return func(_ *Core, callbacks *Callbacks) {
		callbacks.OnComplete = fn
	}
}

// WithEase sets the easing curve and returns tw for chaining.
func (tw *Instance[T]) WithEase(ease func(t float64) float64) *Instance[T] {
	tw.Ease = ease
	return tw
}

// WithFromGetter makes the start value lazy. It returns tw for chaining.
func (tw *Instance[T]) WithFromGetter(get func() T) *Instance[T] {
	tw.FromGetter = get
	return tw
}

// WithToGetter makes the end value lazy. It returns tw for chaining.
func (tw *Instance[T]) WithToGetter(get func() T) *Instance[T] {
	tw.ToGetter = get
	return tw
}

// Validate checks the timing configuration and the required hooks.
func (tw *Instance[T]) Validate() error {
	if tw.Lerp == nil {
		return fmt.Errorf("%w: Lerp", ErrNilCallback)
	}
	if tw.Apply == nil {
		return fmt.Errorf("%w: Apply", ErrNilCallback)
	}
	return tw.Core.Validate()
}

// State returns the current lifecycle state.
func (tw *Instance[T]) State() State {
	return tw.Core.State
}

// Timing returns a copy of the tween's core.
func (tw *Instance[T]) Timing() Core {
	return tw.Core
}

// Value returns the value most recently applied to the target.
func (tw *Instance[T]) Value() T {
	return tw.value
}

// resolve replaces From and To with their getters' results, once.
func (tw *Instance[T]) resolve() {
	if tw.resolved {
		return
	}
	tw.resolved = true
	if tw.FromGetter != nil {
		tw.From = tw.FromGetter()
	}
	if tw.ToGetter != nil {
		tw.To = tw.ToGetter()
	}
}

func (tw *Instance[T]) invokeUpdate(progress float64) {
	if tw.Ease != nil {
		progress = tw.Ease(progress)
	}
	tw.apply(tw.Lerp(tw.From, tw.To, progress))
}

func (tw *Instance[T]) invokeAtStart() {
	tw.apply(tw.From)
}

func (tw *Instance[T]) invokeAtEnd() {
	tw.apply(tw.To)
}

func (tw *Instance[T]) apply(v T) {
	tw.value = v
	tw.Apply(v)
}
