package core

// DelayedTask runs a callback once after a number of simulation ticks.
//
// Scheduling while a task is pending replaces it, so only the last trigger
// fires. It is advanced from the game loop and needs no locking.
type DelayedTask struct {
	remaining int
	fn        func()
}

// Schedule arms the task to run fn after the given number of ticks,
// cancelling anything pending. ticks < 1 is treated as 1.
func (t *DelayedTask) Schedule(ticks int, fn func()) {
	if ticks < 1 {
		ticks = 1
	}
	t.remaining = ticks
	t.fn = fn
}

// Cancel drops the pending task without running it.
func (t *DelayedTask) Cancel() {
	t.remaining = 0
	t.fn = nil
}

// Pending reports whether a task is armed.
func (t *DelayedTask) Pending() bool {
	return t.fn != nil
}

// Remaining returns the ticks left before the pending task fires, 0 if idle.
func (t *DelayedTask) Remaining() int {
	return t.remaining
}

// Advance consumes one tick and runs the task when its countdown reaches zero.
// Returns true if the task fired.
func (t *DelayedTask) Advance() bool {
	if t.fn == nil {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	fn := t.fn
	t.Cancel()
	fn()
	return true
}
