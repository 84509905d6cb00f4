package tween

import "github.com/kamstrup/intmap"

type run struct {
	key    uint64
	runner Runner
}

// runSet keeps runners in start order and indexes them by key. It is shared
// by Driver (keys are run tokens) and Updater (keys are pooled ids).
type runSet struct {
	order    []*run
	index    *intmap.Map[uint64, *run]
	commands Commands
	stepping bool
}

func newRunSet(capacity int) runSet {
	return runSet{
		order: make([]*run, 0, capacity),
		index: intmap.New[uint64, *run](capacity),
	}
}

// add enlists a runner. While a frame is being stepped the runner is indexed
// right away but only joins the step order when the frame ends.
func (s *runSet) add(r *run) {
	s.index.Put(r.key, r)
	if s.stepping {
		s.commands.start(r)
		return
	}
	s.order = append(s.order, r)
}

func (s *runSet) get(key uint64) (*run, bool) {
	return s.index.Get(key)
}

func (s *runSet) len() int {
	return s.index.Len()
}

// deferFn runs fn at the end of the current frame, or right away between frames.
func (s *runSet) deferFn(fn func()) {
	if s.stepping {
		s.commands.Defer(fn)
		return
	}
	fn()
}

// step advances every enlisted runner once, in start order, and drops the
// ones that reached a terminal state. done is called for each dropped run.
func (s *runSet) step(d Delta, done func(*run)) {
	s.stepping = true

	kept := s.order[:0]
	for _, r := range s.order {
		if r.runner.Step(d) {
			s.index.Del(r.key)
			if done != nil {
				done(r)
			}
			continue
		}
		kept = append(kept, r)
	}
	clear(s.order[len(kept):])
	s.order = kept

	s.stepping = false
	s.commands.flush(s)
}

func (s *runSet) reset() {
	clear(s.order)
	s.order = s.order[:0]
	s.index.Clear()
}
