package tween

// Callbacks holds the optional lifecycle hooks of a tween. A nil hook is
// skipped. Each hook fires at most once per instance, in this order:
//
//	OnStart, OnStartAfterDelay, (updates), final value, OnComplete
//
// OnStart and OnStartAfterDelay are skipped when a tween is fast-forwarded.
type Callbacks struct {
	OnStart           func()
	OnStartAfterDelay func()
	OnComplete        func()

	fired uint8
}

const (
	firedStart uint8 = 1 << iota
	firedStartAfterDelay
	firedComplete
)

func (c *Callbacks) start() {
	c.fire(firedStart, c.OnStart)
}

func (c *Callbacks) startAfterDelay() {
	c.fire(firedStartAfterDelay, c.OnStartAfterDelay)
}

func (c *Callbacks) complete() {
	c.fire(firedComplete, c.OnComplete)
}

func (c *Callbacks) fire(bit uint8, fn func()) {
	if c.fired&bit != 0 {
		return
	}
	c.fired |= bit
	if fn != nil {
		fn()
	}
}
