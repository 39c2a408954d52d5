package timer

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// DividerPeriod is the number of cycles per increment of the divider
// (16384Hz).
const DividerPeriod = 256

// periods maps the input clock select bits of types.TAC to the
// number of cycles per increment of types.TIMA.
//
//	00: 4096 Hz   (1024 cycles)
//	01: 262144 Hz (16 cycles)
//	10: 65536 Hz  (64 cycles)
//	11: 16384 Hz  (256 cycles)
var periods = [4]uint32{1024, 16, 64, 256}

// Controller is the controller for the timer. It has four registers:
//
//   - types.DIV: The divider register. It is incremented at a rate of 16384Hz.
//   - types.TIMA: The counter register. It is incremented at a rate specified by the control register.
//   - types.TMA: The modulo register. When the counter overflows, it is reset to the value of this register.
//   - types.TAC: The control register. It enables the counter and specifies its frequency.
type Controller struct {
	div  Timer
	tima Timer
	tac  uint8

	irq *interrupts.Service
}

// NewController returns a new timer controller, which requests
// timer interrupts through irq.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		div:  Timer{Period: DividerPeriod, Enabled: true},
		tima: Timer{Period: periods[0]},
		irq:  irq,
	}
}

// Synchronize advances the divider and the counter by the given
// number of cycles, requesting a timer interrupt when the counter
// overflows.
func (c *Controller) Synchronize(cycles uint32) {
	c.div.Synchronize(cycles)
	if c.tima.Synchronize(cycles) {
		c.irq.RequestTimer()
	}
}

// Read returns the value of the register at the specified address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return c.div.Counter
	case types.TIMA:
		return c.tima.Counter
	case types.TMA:
		return c.tima.Modulo
	case types.TAC:
		return c.tac | 0xF8
	}

	panic(fmt.Sprintf("timer: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the specified address.
// Any write to types.DIV resets it to 0.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.div.Reset()
	case types.TIMA:
		c.tima.Counter = value
	case types.TMA:
		c.tima.Modulo = value
	case types.TAC:
		c.tac = value & 0x07
		c.tima.Enabled = value&types.Bit2 != 0
		c.tima.Period = periods[value&0x03]
	default:
		panic(fmt.Sprintf("timer: illegal write to address 0x%04X", address))
	}
}
