package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/cpu/alu"
)

// Registers holds the register file of the CPU. The 8-bit registers
// are views into the high and low bytes of the four 16-bit pairs, so
// writing B also changes BC and vice versa.
type Registers struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	af, bc, de, hl uint16
}

func high(v uint16) uint8 { return uint8(v >> 8) }
func low(v uint16) uint8 { return uint8(v) }

func setHigh(p *uint16, v uint8) { *p = *p&0x00FF | uint16(v)<<8 }
func setLow(p *uint16, v uint8) { *p = *p&0xFF00 | uint16(v) }

func (r *Registers) A() uint8 { return high(r.af) }
func (r *Registers) F() uint8 { return low(r.af) }
func (r *Registers) B() uint8 { return high(r.bc) }
func (r *Registers) C() uint8 { return low(r.bc) }
func (r *Registers) D() uint8 { return high(r.de) }
func (r *Registers) E() uint8 { return low(r.de) }
func (r *Registers) H() uint8 { return high(r.hl) }
func (r *Registers) L() uint8 { return low(r.hl) }

func (r *Registers) SetA(v uint8) { setHigh(&r.af, v) }
func (r *Registers) SetB(v uint8) { setHigh(&r.bc, v) }
func (r *Registers) SetC(v uint8) { setLow(&r.bc, v) }
func (r *Registers) SetD(v uint8) { setHigh(&r.de, v) }
func (r *Registers) SetE(v uint8) { setLow(&r.de, v) }
func (r *Registers) SetH(v uint8) { setHigh(&r.hl, v) }
func (r *Registers) SetL(v uint8) { setLow(&r.hl, v) }

// SetF sets the flag register. Only the upper nibble is kept.
func (r *Registers) SetF(v uint8) { setLow(&r.af, v&0xF0) }

func (r *Registers) AF() uint16 { return r.af }
func (r *Registers) BC() uint16 { return r.bc }
func (r *Registers) DE() uint16 { return r.de }
func (r *Registers) HL() uint16 { return r.hl }

// SetAF sets the AF register pair, masking out the lower nibble of F.
func (r *Registers) SetAF(v uint16) { r.af = v & 0xFFF0 }
func (r *Registers) SetBC(v uint16) { r.bc = v }
func (r *Registers) SetDE(v uint16) { r.de = v }
func (r *Registers) SetHL(v uint16) { r.hl = v }

// Flags returns the unpacked flag register.
func (r *Registers) Flags() alu.Flags { return alu.FromByte(r.F()) }

// SetFlags stores f into the flag register.
func (r *Registers) SetFlags(f alu.Flags) { r.SetF(f.Byte()) }

// String implements fmt.Stringer.
func (r *Registers) String() string {
	return fmt.Sprintf("AF: %04X BC: %04X DE: %04X HL: %04X SP: %04X PC: %04X", r.af, r.bc, r.de, r.hl, r.SP, r.PC)
}

// Reg8 identifies one of the 8-bit registers. The values of B through
// A match the 3-bit register field encoded in opcodes, where 6 selects
// (HL) instead of a register.
type Reg8 uint8

const (
	B Reg8 = iota
	C
	D
	E
	H
	L
	_
	A
	F
)

// Resolve implements Readable.
func (r Reg8) Resolve(c *CPU) uint8 {
	switch r {
	case A:
		return c.A()
	case B:
		return c.B()
	case C:
		return c.C()
	case D:
		return c.D()
	case E:
		return c.E()
	case H:
		return c.H()
	case L:
		return c.L()
	case F:
		return c.F()
	}
	panic(fmt.Sprintf("invalid register index: %d", r))
}

// Alter implements Writable.
func (r Reg8) Alter(c *CPU, v uint8) {
	switch r {
	case A:
		c.SetA(v)
	case B:
		c.SetB(v)
	case C:
		c.SetC(v)
	case D:
		c.SetD(v)
	case E:
		c.SetE(v)
	case H:
		c.SetH(v)
	case L:
		c.SetL(v)
	case F:
		c.SetF(v)
	default:
		panic(fmt.Sprintf("invalid register index: %d", r))
	}
}

func (r Reg8) String() string {
	return [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A", "F"}[r]
}

// Reg16 identifies one of the 16-bit registers.
type Reg16 uint8

const (
	BC Reg16 = iota
	DE
	HL
	SP
	AF
	PC
)

// Resolve implements Readable.
func (r Reg16) Resolve(c *CPU) uint16 {
	switch r {
	case AF:
		return c.af
	case BC:
		return c.bc
	case DE:
		return c.de
	case HL:
		return c.hl
	case SP:
		return c.SP
	case PC:
		return c.PC
	}
	panic(fmt.Sprintf("invalid register pair: %d", r))
}

// Alter implements Writable.
func (r Reg16) Alter(c *CPU, v uint16) {
	switch r {
	case AF:
		c.SetAF(v)
	case BC:
		c.bc = v
	case DE:
		c.de = v
	case HL:
		c.hl = v
	case SP:
		c.SP = v
	case PC:
		c.PC = v
	default:
		panic(fmt.Sprintf("invalid register pair: %d", r))
	}
}

func (r Reg16) String() string {
	return [...]string{"BC", "DE", "HL", "SP", "AF", "PC"}[r]
}
