package tween

import (
	"fmt"
	"iter"
)

// Updater drives tweens identified by bare integer ids. It is the registry
// behind id handles: ids are issued on Schedule, forgotten once the tween
// reaches a terminal state, and then reused for later tweens. Each reuse
// bumps the id's generation, so a handle from Schedule stops matching once
// its tween is gone.
//
// Like Driver, an Updater is not safe for concurrent use.
type Updater struct {
	runs   runSet
	free   []int
	gens   []uint64
	nextID int
}

// NewUpdater creates an empty updater.
func NewUpdater() *Updater {
	return &Updater{
		runs: newRunSet(64),
	}
}

// Schedule enlists r and returns its id handle. Invalid tweens are rejected.
func (u *Updater) Schedule(r Runner) (Handle, error) {
	if err := r.Validate(); err != nil {
		return Invalid, err
	}
	if err := r.Schedule(); err != nil {
		return Invalid, err
	}

	id := u.acquireID()
	u.runs.add(&run{key: uint64(id), runner: r})
	return newUpdaterHandle(id, u.gens[id]), nil
}

// Cancel cancels the tween behind h. The id stays taken until the next
// Update drops the tween.
func (u *Updater) Cancel(h Handle) bool {
	r, ok := u.lookup(h)
	if !ok {
		return false
	}
	return r.runner.Cancel()
}

// State returns the state of the tween behind h, if the updater still holds it.
func (u *Updater) State(h Handle) (State, bool) {
	r, ok := u.lookup(h)
	if !ok {
		return StateIdle, false
	}
	return r.runner.State(), true
}

// Update steps every held tween once.
func (u *Updater) Update(d Delta) {
	u.runs.step(d, func(r *run) {
		u.releaseID(int(r.key))
	})
}

// Len returns the number of tweens the updater holds.
func (u *Updater) Len() int {
	return u.runs.len()
}

// All iterates the stepped tweens in schedule order.
func (u *Updater) All() iter.Seq2[Handle, Runner] {
	return func(yield func(Handle, Runner) bool) {
		for _, r := range u.runs.order {
			id := int(r.key)
			if !yield(newUpdaterHandle(id, u.gens[id]), r.runner) {
				return
			}
		}
	}
}

func (u *Updater) lookup(h Handle) (*run, bool) {
	if !h.RunsAsUpdater() {
		return nil, false
	}
	id := h.ID()
	if id >= len(u.gens) || (h.gen != 0 && h.gen != u.gens[id]) {
		return nil, false
	}
	return u.runs.get(uint64(id))
}

func (u *Updater) acquireID() int {
	if n := len(u.free); n > 0 {
		id := u.free[n-1]
		u.free = u.free[:n-1]
		u.gens[id]++
		return id
	}
	id := u.nextID
	u.nextID++
	u.gens = append(u.gens, 1)
	return id
}

func (u *Updater) releaseID(id int) {
	if id < 0 || id >= u.nextID {
		panic(fmt.Sprintf("tween: released id %d was never issued", id))
	}
	u.free = append(u.free, id)
}
