package tween

// Cancel cancels the tween behind h, dispatching on the handle's shape:
// driver handles go to their owning Driver, id handles to u. It reports
// false for Invalid handles and for tweens that already finished.
func Cancel(h Handle, u *Updater) bool {
	switch {
	case h.RunsOnDriver():
		return h.owner.Cancel(h)
	case h.RunsAsUpdater() && u != nil:
		return u.Cancel(h)
	default:
		return false
	}
}
