package tween

import "fmt"

// Schedule moves an idle tween to Scheduled so the next Step starts it.
// Drivers call it when a tween is handed to them; a tween that is never
// scheduled stays idle forever.
func (tw *Instance[T]) Schedule() error {
	if tw.Core.State != StateIdle {
		return fmt.Errorf("%w: state is %v", ErrNotIdle, tw.Core.State)
	}
	tw.Core.State = StateScheduled
	return nil
}

// Cancel stops the tween without firing any further hooks. A cancel issued
// from inside a hook takes effect as soon as that hook returns. It reports
// false when the tween had already finished.
func (tw *Instance[T]) Cancel() bool {
	if tw.Core.State.Terminal() {
		return false
	}
	tw.Core.State = StateCanceled
	return true
}

// Step advances the tween by one frame and reports whether it has reached a
// terminal state. Stepping a terminal tween is a no-op.
func (tw *Instance[T]) Step(d Delta) bool {
	switch tw.Core.State {
	case StateIdle:
		return false
	case StateCompleted, StateCanceled:
		return true
	case StateScheduled:
		tw.initialize()
	}

	tw.update(d)
	return tw.Core.State.Terminal()
}

// FastForward completes the tween synchronously. It is the path taken when
// no driver will ever tick the tween: OnStart and OnStartAfterDelay are not
// fired, the final value is applied and OnComplete runs. Getters are not
// called: playback never begins, so the stored From and To are applied.
func (tw *Instance[T]) FastForward() {
	if tw.Core.State.Terminal() {
		return
	}
	tw.complete(tw.Core.FinalReverse())
}

func (tw *Instance[T]) initialize() {
	core := &tw.Core
	if core.Delay > 0 {
		core.State = StateDelayed
	} else {
		core.State = StateRunning
	}

	tw.Callbacks.start()

	if core.State == StateRunning {
		tw.runTween()
	}
}

func (tw *Instance[T]) update(d Delta) {
	core := &tw.Core
	if core.State != StateDelayed && core.State != StateRunning {
		return
	}
	if !(core.LoopDuration > 0) {
		panic(fmt.Sprintf("tween: step with non-positive loop duration %v", core.LoopDuration))
	}

	core.Time += d.For(core.TimeKind) * core.PlaybackSpeed

	if core.State == StateDelayed {
		if core.Time >= core.Delay {
			tw.runTween()
		}
		return
	}

	if core.Time >= core.TotalDuration() {
		tw.complete(core.FinalReverse())
		return
	}

	tw.invokeUpdate(core.Progress())
}

func (tw *Instance[T]) runTween() {
	core := &tw.Core
	tw.resolve()
	core.State = StateRunning

	tw.Callbacks.startAfterDelay()

	if core.Delay > 0 && core.DelayMode == DelayModeAffectOnDuration {
		core.Time -= core.Delay
	}
}

// complete applies the final value before OnComplete, so observers in
// OnComplete see it already in place.
func (tw *Instance[T]) complete(reverse bool) {
	core := &tw.Core
	core.Time = core.TotalDuration()

	if reverse {
		tw.invokeAtStart()
	} else {
		tw.invokeAtEnd()
	}

	if core.State == StateCanceled {
		return
	}
	core.State = StateCompleted
	tw.Callbacks.complete()
}
