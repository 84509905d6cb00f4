package tween

import (
	"context"
	"fmt"
	"iter"
	"time"
)

// Driver owns a set of running tweens and steps each of them once per frame.
// It plays the role of the owning context: while it is inactive nothing it
// holds advances, and tweens started on it are completed synchronously.
//
// A Driver is not safe for concurrent use. Hooks run on the goroutine that
// calls Once and may start, cancel or defer work on the same driver.
type Driver struct {
	// Clock converts frame times into scaled and unscaled deltas.
	Clock *Clock

	active    bool
	nextToken uint64
	runs      runSet
	stats     driverStatsInternal
}

// NewDriver creates an active driver.
func NewDriver() *Driver {
	return &Driver{
		Clock:  NewClock(),
		active: true,
		runs:   newRunSet(64),
		stats:  newDriverStats(),
	}
}

// SetActive marks the driving context as available or not. Tweens already
// running are suspended, not lost, while the driver is inactive.
func (d *Driver) SetActive(active bool) {
	d.active = active
}

func (d *Driver) Active() bool {
	return d.active
}

// Start schedules r to be stepped from the next frame on and returns a handle
// for it. On an inactive driver r is fast-forwarded to completion instead and
// Invalid is returned, since nothing would ever tick it.
func (d *Driver) Start(r Runner) (Handle, error) {
	if err := r.Validate(); err != nil {
		return Invalid, err
	}
	if state := r.State(); state != StateIdle {
		return Invalid, fmt.Errorf("%w: state is %v", ErrNotIdle, state)
	}

	if !d.active {
		r.FastForward()
		d.stats.fastForwarded++
		d.stats.recordDone(r.State())
		return Invalid, nil
	}

	if err := r.Schedule(); err != nil {
		return Invalid, err
	}

	d.nextToken++
	d.runs.add(&run{key: d.nextToken, runner: r})
	d.stats.started++

	return newDriverHandle(d, d.nextToken), nil
}

// Cancel cancels the tween behind h. It reports false when h does not belong
// to this driver or the tween has already finished.
func (d *Driver) Cancel(h Handle) bool {
	r, ok := d.Lookup(h)
	if !ok {
		return false
	}
	return r.Cancel()
}

// CancelAll cancels every tween the driver holds. Between frames they are
// forgotten at once; from inside a hook they are dropped as they are stepped.
func (d *Driver) CancelAll() {
	for _, r := range d.runs.order {
		r.runner.Cancel()
	}
	for _, r := range d.runs.commands.starts {
		r.runner.Cancel()
	}
	if d.runs.stepping {
		return
	}
	d.stats.canceled += int64(len(d.runs.order))
	d.runs.reset()
}

// Lookup returns the tween behind h while the driver still holds it.
func (d *Driver) Lookup(h Handle) (Runner, bool) {
	if h.owner != d || !h.RunsOnDriver() {
		return nil, false
	}
	r, ok := d.runs.get(h.token)
	if !ok {
		return nil, false
	}
	return r.runner, true
}

// Len returns the number of tweens the driver holds.
func (d *Driver) Len() int {
	return d.runs.len()
}

// All iterates the stepped tweens in start order.
func (d *Driver) All() iter.Seq2[Handle, Runner] {
	return func(yield func(Handle, Runner) bool) {
		for _, r := range d.runs.order {
			if !yield(newDriverHandle(d, r.key), r.runner) {
				return
			}
		}
	}
}

// Defer runs fn after the current frame has been stepped, or immediately
// when called between frames.
func (d *Driver) Defer(fn func()) {
	d.runs.deferFn(fn)
}

// Once steps every tween with a frame time of dt seconds, scaled through
// the driver's Clock.
func (d *Driver) Once(dt float64) {
	d.Step(d.Clock.Scaled(dt))
}

// Step steps every tween once with an explicit delta. Tweens that reach a
// terminal state are dropped; starts issued from hooks join at the end of
// the frame.
func (d *Driver) Step(delta Delta) {
	if !d.active {
		return
	}

	start := time.Now()
	d.runs.step(delta, func(r *run) {
		d.stats.recordDone(r.runner.State())
	})
	d.stats.recordFrame(time.Since(start))
}

// Run steps the driver at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.Clock.Tick()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Step(d.Clock.Tick())
		}
	}
}

// Stats returns statistics about the driver's execution.
func (d *Driver) Stats() *DriverStats {
	return d.stats.snapshot(d.Len())
}
