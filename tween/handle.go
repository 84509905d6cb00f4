package tween

// Handle correlates a started tween with the context that drives it. It is
// either a driver handle (owning Driver plus a per-run token) or a bare
// non-negative id issued by an Updater. Any other combination, including the
// zero value, is Invalid.
//
// A Handle does not own the tween; it is only a key for Cancel and Lookup.
type Handle struct {
	owner *Driver
	token uint64
	// slot is id+1 so that the zero Handle carries no id.
	slot int
	// gen is the Updater generation of the id; 0 matches any generation.
	gen uint64
}

// Invalid is returned when no driving loop was started, for example when a
// tween was fast-forwarded. Its ID is -1.
var Invalid = Handle{}

func newDriverHandle(owner *Driver, token uint64) Handle {
	return Handle{owner: owner, token: token}
}

// NewIDHandle returns a handle for a tween driven by an id-ticking updater.
// Negative ids yield Invalid. The handle names the id only, so it addresses
// whichever tween currently holds that id; handles returned by
// Updater.Schedule also pin the tween they were issued for.
func NewIDHandle(id int) Handle {
	if id < 0 {
		return Invalid
	}
	return Handle{slot: id + 1}
}

// RunsOnDriver reports whether the handle refers to a Driver-owned run.
func (h Handle) RunsOnDriver() bool {
	return h.owner != nil && h.token != 0 && h.slot == 0
}

func newUpdaterHandle(id int, gen uint64) Handle {
	return Handle{slot: id + 1, gen: gen}
}

// RunsAsUpdater reports whether the handle is an updater id.
func (h Handle) RunsAsUpdater() bool {
	return h.owner == nil && h.token == 0 && h.slot > 0
}

func (h Handle) IsValid() bool {
	return h.RunsOnDriver() || h.RunsAsUpdater()
}

// ID returns the updater id, or -1 for driver and invalid handles.
func (h Handle) ID() int {
	return h.slot - 1
}

// Owner returns the driver of a driver handle, or nil.
func (h Handle) Owner() *Driver {
	return h.owner
}

// Token returns the per-run token of a driver handle, or 0.
func (h Handle) Token() uint64 {
	return h.token
}
