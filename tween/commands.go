package tween

// Commands buffers work issued while a frame is being stepped. Starting a
// tween from inside another tween's hook must not reorder or grow the run
// list mid-iteration, so such starts wait here until the end of the frame.
type Commands struct {
	starts []*run
	defers []func()
}

// Defer queues a function to run once the current frame has been stepped.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

func (c *Commands) start(r *run) {
	c.starts = append(c.starts, r)
}

// flush enlists the buffered starts, then runs the deferred functions,
// resetting the buffer state. Functions deferred by a deferred function are
// run in the same flush.
func (c *Commands) flush(s *runSet) {
	for _, r := range c.starts {
		s.order = append(s.order, r)
	}
	c.starts = c.starts[:0]

	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
