package tween_test

import (
	"fmt"

	"github.com/plus3/nanotween/tween"
)

// recorder collects the hooks a tween fires, in order.
type recorder struct {
	events   []string
	progress []float64
	applied  []float64

	lerped bool
}

// newTween builds a float tween from 0 to 10 wired to the recorder. Update
// progress is recorded per update; terminal values as "atStart" or "atEnd".
func (r *recorder) newTween(opts ...tween.Option) *tween.Instance[float64] {
	hooks := []tween.Option{
		tween.OnStart(func() { r.events = append(r.events, "start") }),
		tween.OnStartAfterDelay(func() { r.events = append(r.events, "startAfterDelay") }),
		tween.OnComplete(func() { r.events = append(r.events, "complete") }),
	}
	tw := tween.New(0.0, 10.0, tween.LerpFloat64, func(v float64) {
		r.applied = append(r.applied, v)
	}, append(hooks, opts...)...)

	lerp := tw.Lerp
	tw.Lerp = func(a, b float64, t float64) float64 {
		r.events = append(r.events, "update")
		r.progress = append(r.progress, t)
		r.lerped = true
		return lerp(a, b, t)
	}
	apply := tw.Apply
	tw.Apply = func(v float64) {
		if r.lerped {
			r.lerped = false
		} else {
			switch v {
			case tw.From:
				r.events = append(r.events, "atStart")
			case tw.To:
				r.events = append(r.events, "atEnd")
			default:
				r.events = append(r.events, fmt.Sprintf("apply(%v)", v))
			}
		}
		apply(v)
	}
	return tw
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// stepUntilDone steps tw with dt until it is terminal and returns the number
// of steps taken. It gives up after limit steps.
func stepUntilDone(tw tween.Runner, dt float64, limit int) int {
	for i := 1; i <= limit; i++ {
		if tw.Step(tween.Uniform(dt)) {
			return i
		}
	}
	return -1
}
