package breath

// Countdown counts whole seconds from a configured total toward zero.
// It holds no tick source of its own: the owner calls Tick once per
// second while it wants the countdown running, so releasing the tick
// source is the owner's single teardown obligation.
type Countdown struct {
	total     int
	remaining int
	running   bool
	signaled  bool
}

// Start begins (or resumes) the countdown. After a Pause the
// remaining count is kept and the next Start continues from there;
// after completion or Stop a Start begins fresh from totalSeconds.
func (c *Countdown) Start(totalSeconds int) {
	if c.remaining > 0 && !c.signaled {
		c.running = true
		return
	}
	c.total = totalSeconds
	c.remaining = totalSeconds
	c.signaled = false
	c.running = totalSeconds > 0
}

// Pause halts ticking without resetting the remaining count.
func (c *Countdown) Pause() {
	c.running = false
}

// Stop halts and discards the remaining count. Safe when already
// stopped.
func (c *Countdown) Stop() {
	c.running = false
	c.remaining = 0
}

// Tick consumes one second. It returns true exactly once, on the
// tick that reaches zero; the countdown halts itself at that point
// and does not auto-restart.
func (c *Countdown) Tick() bool {
	if !c.running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.running = false
	if c.signaled {
		return false
	}
	c.signaled = true
	return true
}

// Remaining is the non-negative number of seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Total is the configured session length in seconds.
func (c *Countdown) Total() int { return c.total }

// Running reports whether ticks are currently being consumed.
func (c *Countdown) Running() bool { return c.running }
