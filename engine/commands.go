package engine

import "time"

// Commands buffers work that must not run while systems are executing.
// Deferred functions run once every system of the frame has finished;
// delayed functions are handed to the Scheduler and run from a later frame.
type Commands struct {
	defers  []func()
	delayed []delayedCommand
}

type delayedCommand struct {
	delay time.Duration
	fn    func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the current frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// DeferAfter queues fn to run once, from the first frame in which at least
// delay of frame time has passed since the current frame. A zero delay
// runs fn at the start of the next frame.
func (c *Commands) DeferAfter(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	c.delayed = append(c.delayed, delayedCommand{delay: delay, fn: fn})
}

// flush runs the deferred functions and returns the delayed ones,
// resetting the buffer state.
func (c *Commands) flush() []delayedCommand {
	for _, fn := range c.defers {
		fn()
	}

	delayed := c.delayed
	c.defers = c.defers[:0]
	c.delayed = nil
	return delayed
}
