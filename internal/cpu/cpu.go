// Package cpu implements the SM83 processor: its register file, the
// base and extended instruction sets and the step loop that drives the
// rest of the hardware.
package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// BootCycles is the value of the cycle counter at power on.
	BootCycles = 0xA0

	// InterruptCycles is the cost of dispatching an interrupt.
	InterruptCycles = 20
)

// Mode is the run mode of the CPU.
type Mode uint8

const (
	// Run is the normal CPU mode.
	Run Mode = iota
	// HaltJumpInterruptVector is entered by HALT when the IME is set.
	// Any pending interrupt wakes the CPU and is dispatched.
	HaltJumpInterruptVector
	// HaltContinue is entered by HALT when the IME is reset and no
	// interrupt is pending. Any pending interrupt wakes the CPU, which
	// resumes after the HALT without dispatching it.
	HaltContinue
	// HaltBug is entered by HALT when the IME is reset and an interrupt
	// is already pending. The CPU does not halt, and the byte after the
	// HALT is read twice.
	HaltBug
)

func (m Mode) String() string {
	return [...]string{"Run", "HaltJumpInterruptVector", "HaltContinue", "HaltBug"}[m]
}

// Bus is the view of memory seen by the CPU. Doubles are little-endian.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Read16(address uint16) uint16
	Write16(address uint16, value uint16)
}

// Device is a component that is kept in step with the CPU.
type Device interface {
	// Synchronize advances the device by the given number of cycles.
	Synchronize(cycles uint32)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable flag.
	IME bool
	// Mode is the current run mode.
	Mode Mode
	// Cycles is the number of cycles elapsed since power on. It wraps.
	Cycles uint64

	bus     Bus
	irq     *interrupts.Service
	devices []Device
	hooks   []ExecutionHook

	// eiDelay counts down the instructions until EI takes effect.
	eiDelay uint8
	// haltBug is set when the next fetch must not advance PC.
	haltBug bool
}

// NewCPU creates a new CPU in its power on state. The bus is used to
// read and write memory, and devices are synchronized after every step.
func NewCPU(bus Bus, irq *interrupts.Service, devices ...Device) *CPU {
	c := &CPU{
		bus:     bus,
		irq:     irq,
		devices: devices,
		IME:     true,
		Cycles:  BootCycles,
	}
	c.SetAF(0x1234)
	c.SetBC(0x1234)
	c.SetDE(0x1234)
	c.SetHL(0x1234)
	c.SP = 0x1234
	c.PC = 0x0000
	return c
}

// AddHook registers an execution hook.
func (c *CPU) AddHook(h ExecutionHook) {
	c.hooks = append(c.hooks, h)
}

// Decode returns the instruction at PC. The 0xCB prefix is resolved
// here by peeking the following byte, so the returned opcode always
// accounts for its own size and cycles.
func (c *CPU) Decode() Opcode {
	opcode := c.bus.Read(c.PC)
	if opcode == 0xCB {
		return InstructionSetCB[c.bus.Read(c.PC+1)]
	}
	return InstructionSet[opcode]
}

// Step runs the CPU for a single instruction, or a single cycle when
// halted, and returns the number of cycles that elapsed.
func (c *CPU) Step() uint32 {
	var elapsed uint32
	if c.Mode == Run {
		elapsed = uint32(c.execute())
	} else {
		elapsed = 1
	}

	c.synchronize(elapsed)

	if n := c.processInterrupts(); n > 0 {
		c.synchronize(uint32(n))
		elapsed += uint32(n)
	}
	return elapsed
}

func (c *CPU) execute() uint8 {
	instr := c.Decode()
	for _, h := range c.hooks {
		h.BeforeExecute(c, instr)
	}

	// the byte after HALT is fetched without PC advancing
	if c.haltBug {
		c.haltBug = false
		c.PC--
	}

	cycles := instr.Cycles(c)
	instr.Exec(c)
	c.PC += instr.Size()

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.IME = true
		}
	}
	return cycles
}

func (c *CPU) synchronize(cycles uint32) {
	c.Cycles += uint64(cycles)
	for _, d := range c.devices {
		d.Synchronize(cycles)
	}
}

// halt picks the halt mode from the state of the interrupt controller.
// An EI directly before HALT counts as the IME being set.
func (c *CPU) halt() {
	switch {
	case c.IME || c.eiDelay > 0:
		c.Mode = HaltJumpInterruptVector
	case c.irq.Pending() != 0:
		c.Mode = HaltBug
	default:
		c.Mode = HaltContinue
	}
}

// push pushes v onto the stack.
func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.bus.Write16(c.SP, v)
}

// pop pops a double from the stack.
func (c *CPU) pop() uint16 {
	v := c.bus.Read16(c.SP)
	c.SP += 2
	return v
}
