package state

// Clock hands out increasing sequence numbers for finalized strokes. Like
// the canvas that owns it, it is only touched from the UI goroutine.
type Clock struct {
	counter uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	c.counter++
	return c.counter
}
