// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

// Timer counts whole periods of elapsed cycles in an 8-bit counter.
// When the counter overflows it is reloaded from Modulo.
type Timer struct {
	// Counter is incremented once every Period cycles.
	Counter uint8
	// Modulo is loaded into Counter when it overflows.
	Modulo uint8
	// Period is the number of cycles per increment.
	Period uint32
	// Enabled gates the timer; a disabled timer ignores elapsed cycles.
	Enabled bool

	clock uint32
}

// Synchronize accumulates the elapsed cycles, incrementing the counter
// once for every whole period. It reports whether the counter
// overflowed at least once.
func (t *Timer) Synchronize(cycles uint32) (overflow bool) {
	if !t.Enabled || t.Period == 0 {
		return false
	}
	t.clock += cycles
	for t.clock >= t.Period {
		t.clock -= t.Period
		t.Counter++
		if t.Counter == 0 {
			t.Counter = t.Modulo
			overflow = true
		}
	}
	return overflow
}

// Reset clears the counter and the accumulated sub-period clock.
func (t *Timer) Reset() {
	t.Counter = 0
	t.clock = 0
}
