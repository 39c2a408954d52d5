package cpu

import "github.com/thelolagemann/dmgcore/internal/cpu/alu"

// Value is the width of an operand, either a word (8-bit) or a
// double (16-bit).
type Value interface {
	~uint8 | ~uint16
}

// Readable is an operand that can be resolved to a value. Operands are
// resolved while PC still points at the first byte of the instruction,
// so immediates are found at PC+1.
//
// Resolve may mutate the CPU: (HL+), (HL-) and SP+e8 have side effects
// when read.
type Readable[T Value] interface {
	Resolve(c *CPU) T
	String() string
}

// Writable is an operand that can be altered.
type Writable[T Value] interface {
	Alter(c *CPU, v T)
	String() string
}

// Operand is an operand that can be both read and written.
type Operand[T Value] interface {
	Readable[T]
	Writable[T]
}

// immediate8 is the byte following the opcode. (d8)
type immediate8 struct{}

func (immediate8) Resolve(c *CPU) uint8 { return c.bus.Read(c.PC + 1) }
func (immediate8) String() string { return "d8" }

// immediate16 is the little-endian double following the opcode. (d16)
type immediate16 struct{}

func (immediate16) Resolve(c *CPU) uint16 { return c.bus.Read16(c.PC + 1) }
func (immediate16) String() string { return "d16" }

// pointer addresses memory through a register pair, e.g. (BC).
type pointer struct {
	reg Reg16
}

func (p pointer) Resolve(c *CPU) uint8 { return c.bus.Read(p.reg.Resolve(c)) }
func (p pointer) Alter(c *CPU, v uint8) { c.bus.Write(p.reg.Resolve(c), v) }
func (p pointer) String() string { return "(" + p.reg.String() + ")" }

// absolute addresses memory through the immediate double following
// the opcode. (a16)
type absolute struct{}

func (absolute) Resolve(c *CPU) uint8 { return c.bus.Read(c.bus.Read16(c.PC + 1)) }
func (absolute) Alter(c *CPU, v uint8) { c.bus.Write(c.bus.Read16(c.PC+1), v) }
func (absolute) String() string { return "(a16)" }

// absolute16 stores a double at the immediate address, used only by
// LD (a16),SP.
type absolute16 struct{}

func (absolute16) Alter(c *CPU, v uint16) { c.bus.Write16(c.bus.Read16(c.PC+1), v) }
func (absolute16) String() string { return "(a16)" }

// highPage addresses the high page through the immediate byte following
// the opcode. (0xFF00+a8)
type highPage struct{}

func (highPage) Resolve(c *CPU) uint8 { return c.bus.Read(0xFF00 | uint16(c.bus.Read(c.PC+1))) }
func (highPage) Alter(c *CPU, v uint8) { c.bus.Write(0xFF00|uint16(c.bus.Read(c.PC+1)), v) }
func (highPage) String() string { return "(a8)" }

// highPageC addresses the high page through register C. (0xFF00+C)
type highPageC struct{}

func (highPageC) Resolve(c *CPU) uint8 { return c.bus.Read(0xFF00 | uint16(c.C())) }
func (highPageC) Alter(c *CPU, v uint8) { c.bus.Write(0xFF00|uint16(c.C()), v) }
func (highPageC) String() string { return "(C)" }

// hlPost addresses memory through HL and then increments or
// decrements HL, on both reads and writes. (HL+) (HL-)
type hlPost struct {
	delta uint16
}

var (
	hlIncrement = hlPost{delta: 1}
	hlDecrement = hlPost{delta: 0xFFFF}
)

func (p hlPost) Resolve(c *CPU) uint8 {
	v := c.bus.Read(c.hl)
	c.hl += p.delta
	return v
}

func (p hlPost) Alter(c *CPU, v uint8) {
	c.bus.Write(c.hl, v)
	c.hl += p.delta
}

func (p hlPost) String() string {
	if p.delta == 1 {
		return "(HL+)"
	}
	return "(HL-)"
}

// stackRelative is SP plus the signed immediate byte following the
// opcode. Resolving it stores the flags of the addition. (SP+e8)
type stackRelative struct{}

func (stackRelative) Resolve(c *CPU) uint16 {
	r := alu.AddSigned(c.SP, c.bus.Read(c.PC+1))
	c.SetFlags(r.Flags)
	return r.Value
}

func (stackRelative) String() string { return "SP+e8" }

// r8 returns the operand selected by the 3-bit register field of an
// opcode, where 6 is (HL).
func r8(index uint8) Operand[uint8] {
	if index == 6 {
		return pointer{HL}
	}
	return Reg8(index)
}
