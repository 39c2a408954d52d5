package cpu

// processInterrupts services the interrupt controller according to the
// run mode, and returns the number of cycles spent dispatching.
func (c *CPU) processInterrupts() uint8 {
	pending := c.irq.Pending() != 0

	switch c.Mode {
	case Run:
		if c.IME && pending {
			return c.dispatch()
		}
	case HaltJumpInterruptVector:
		if pending {
			c.Mode = Run
			return c.dispatch()
		}
	case HaltContinue:
		if pending {
			c.Mode = Run
		}
	case HaltBug:
		c.Mode = Run
		c.haltBug = true
	}
	return 0
}

// dispatch jumps to the vector of the highest priority pending
// interrupt, acknowledging it and disabling the IME.
func (c *CPU) dispatch() uint8 {
	i, ok := c.irq.Next()
	if !ok {
		return 0
	}
	c.irq.Acknowledge(i)
	c.IME = false
	c.eiDelay = 0
	c.push(c.PC)
	c.PC = i.Vector
	return InterruptCycles
}
