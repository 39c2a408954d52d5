// Package debug provides observers for the emulator: an instruction
// tracer hooked into the CPU, and a serial monitor hooked into the
// bus that detects the results of conformance test programs.
package debug

import (
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Tracer is a cpu.ExecutionHook that logs every instruction at the
// debug level, before it is executed.
type Tracer struct {
	Log log.Logger

	// Limit is the number of instructions to trace, 0 for no limit.
	Limit uint64
	count uint64
}

// NewTracer returns a Tracer writing to l.
func NewTracer(l log.Logger, limit uint64) *Tracer {
	return &Tracer{Log: l, Limit: limit}
}

// BeforeExecute implements cpu.ExecutionHook.
func (t *Tracer) BeforeExecute(c *cpu.CPU, op cpu.Opcode) {
	if t.Limit > 0 && t.count >= t.Limit {
		return
	}
	t.count++
	t.Log.Debugf("%04X %-14s %s", c.PC, op, &c.Registers)
}

// Count returns the number of instructions traced so far.
func (t *Tracer) Count() uint64 {
	return t.count
}
