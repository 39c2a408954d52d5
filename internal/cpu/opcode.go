package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/cpu/alu"
)

// Opcode is a single decodable instruction. Exec runs while PC still
// points at the first byte of the instruction; the CPU adds Size to PC
// once Exec returns. Instructions that load PC themselves subtract their
// own size from the target so that the increment lands on it.
type Opcode interface {
	// Exec executes the instruction against c.
	Exec(c *CPU)
	// Size is the number of bytes the instruction occupies.
	Size() uint16
	// Cycles is the number of clock cycles the instruction takes. For
	// conditional instructions this depends on the flags of c.
	Cycles(c *CPU) uint8
	// String returns the mnemonic of the instruction.
	String() string
}

// instruction holds the fixed parameters shared by every opcode.
type instruction struct {
	name   string
	size   uint16
	cycles uint8
}

func (i instruction) Size() uint16 { return i.size }
func (i instruction) Cycles(*CPU) uint8 { return i.cycles }
func (i instruction) String() string { return i.name }
func op(name string, size uint16, cycles uint8) instruction {
	return instruction{name: name, size: size, cycles: cycles}
}

// Condition is the flag condition of a branch.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

// Met reports whether the condition holds for the flags of c.
func (cond Condition) Met(c *CPU) bool {
	switch cond {
	case NotZero:
		return !c.Flags().Zero
	case Zero:
		return c.Flags().Zero
	case NotCarry:
		return !c.Flags().Carry
	case Carry:
		return c.Flags().Carry
	}
	return true
}

func (cond Condition) String() string {
	return [...]string{"", "NZ", "Z", "NC", "C"}[cond]
}

// branch is embedded by instructions whose cost depends on a condition.
type branch struct {
	instruction
	cond     Condition
	notTaken uint8
}

func (b branch) Cycles(c *CPU) uint8 {
	if b.cond.Met(c) {
		return b.cycles
	}
	return b.notTaken
}

func branchName(mnemonic string, cond Condition, operand string) string {
	switch {
	case cond == Always && operand == "":
		return mnemonic
	case cond == Always:
		return mnemonic + " " + operand
	case operand == "":
		return mnemonic + " " + cond.String()
	}
	return mnemonic + " " + cond.String() + "," + operand
}

// nop does nothing.
type nop struct{ instruction }

func (nop) Exec(*CPU) {}

// load copies src into dst.
//
//	LD dst, src
type load[T Value] struct {
	instruction
	dst Writable[T]
	src Readable[T]
}

func newLoad[T Value](dst Writable[T], src Readable[T], size uint16, cycles uint8) load[T] {
	return load[T]{op(fmt.Sprintf("LD %s,%s", dst, src), size, cycles), dst, src}
}

func (l load[T]) Exec(c *CPU) { l.dst.Alter(c, l.src.Resolve(c)) }

// arithmetic applies a two operand ALU function to A and src, storing
// the result in A. CP discards the result and keeps only the flags.
type arithmetic struct {
	instruction
	fn      func(a, b uint8, f alu.Flags) alu.Result[uint8]
	src     Readable[uint8]
	discard bool
}

func (a arithmetic) Exec(c *CPU) {
	r := a.fn(c.A(), a.src.Resolve(c), c.Flags())
	c.SetFlags(r.Flags)
	if !a.discard {
		c.SetA(r.Value)
	}
}

// increment increments or decrements target, leaving the carry flag
// untouched.
//
//	INC n / DEC n
type increment struct {
	instruction
	target Operand[uint8]
	dec    bool
}

func (i increment) Exec(c *CPU) {
	var r alu.Result[uint8]
	if i.dec {
		r = alu.Dec(i.target.Resolve(c))
	} else {
		r = alu.Inc(i.target.Resolve(c))
	}
	r.Flags.Carry = c.Flags().Carry
	c.SetFlags(r.Flags)
	i.target.Alter(c, r.Value)
}

// increment16 increments or decrements a register pair. No flags are
// affected.
//
//	INC nn / DEC nn
type increment16 struct {
	instruction
	target Reg16
	delta  uint16
}

func (i increment16) Exec(c *CPU) { i.target.Alter(c, i.target.Resolve(c)+i.delta) }

// addHL adds src to HL, leaving the zero flag untouched.
//
//	ADD HL, nn
type addHL struct {
	instruction
	src Reg16
}

func (a addHL) Exec(c *CPU) {
	r := alu.Add16(c.HL(), a.src.Resolve(c))
	r.Flags.Zero = c.Flags().Zero
	c.SetFlags(r.Flags)
	c.SetHL(r.Value)
}

// jump loads PC with target when the condition is met.
//
//	JP cc, nn / JP HL
type jump struct {
	branch
	target Readable[uint16]
}

func (j jump) Exec(c *CPU) {
	if j.cond.Met(c) {
		c.PC = j.target.Resolve(c) - j.size
	}
}

// jumpRelative adds the signed immediate to the address of the next
// instruction when the condition is met.
//
//	JR cc, e8
type jumpRelative struct {
	branch
}

func (j jumpRelative) Exec(c *CPU) {
	if j.cond.Met(c) {
		target := c.PC + j.size + uint16(int8(c.bus.Read(c.PC+1)))
		c.PC = target - j.size
	}
}

// call pushes the address of the next instruction and jumps to the
// immediate address when the condition is met.
//
//	CALL cc, nn
type call struct {
	branch
}

func (i call) Exec(c *CPU) {
	if i.cond.Met(c) {
		target := c.bus.Read16(c.PC + 1)
		c.push(c.PC + i.size)
		c.PC = target - i.size
	}
}

// ret pops PC when the condition is met.
//
//	RET cc
type ret struct {
	branch
	enableInterrupts bool
}

func (r ret) Exec(c *CPU) {
	if r.cond.Met(c) {
		c.PC = c.pop() - r.size
		if r.enableInterrupts {
			c.IME = true
		}
	}
}

// rst calls one of the eight fixed restart vectors.
//
//	RST n
type rst struct {
	instruction
	vector uint16
}

func (r rst) Exec(c *CPU) {
	c.push(c.PC + r.size)
	c.PC = r.vector - r.size
}

// push pushes a register pair onto the stack.
type push struct {
	instruction
	reg Reg16
}

func (p push) Exec(c *CPU) { c.push(p.reg.Resolve(c)) }

// pop pops a register pair from the stack. Popping AF masks the lower
// nibble of F.
type pop struct {
	instruction
	reg Reg16
}

func (p pop) Exec(c *CPU) { p.reg.Alter(c, c.pop()) }

// bitTest tests a bit of target, leaving the carry flag untouched.
//
//	BIT n, r
type bitTest struct {
	instruction
	index  uint8
	target Readable[uint8]
}

func (b bitTest) Exec(c *CPU) {
	f := alu.TestBit(b.target.Resolve(c), b.index)
	f.Carry = c.Flags().Carry
	c.SetFlags(f)
}

// bitSet sets or resets a bit of target. No flags are affected.
//
//	SET n, r / RES n, r
type bitSet struct {
	instruction
	index  uint8
	target Operand[uint8]
	set    bool
}

func (b bitSet) Exec(c *CPU) {
	if b.set {
		b.target.Alter(c, alu.SetBit(b.target.Resolve(c), b.index))
	} else {
		b.target.Alter(c, alu.ResetBit(b.target.Resolve(c), b.index))
	}
}

// shift applies a rotate, shift or swap to target. The accumulator
// rotates (RLCA, RRCA, RLA, RRA) always reset the zero flag.
type shift struct {
	instruction
	fn        func(v uint8, f alu.Flags) alu.Result[uint8]
	target    Operand[uint8]
	clearZero bool
}

func (s shift) Exec(c *CPU) {
	r := s.fn(s.target.Resolve(c), c.Flags())
	if s.clearZero {
		r.Flags.Zero = false
	}
	c.SetFlags(r.Flags)
	s.target.Alter(c, r.Value)
}

// control is an instruction without operands that acts on the CPU
// state directly (DAA, CPL, SCF, CCF, HALT, STOP, DI, EI).
type control struct {
	instruction
	fn func(c *CPU)
}

func (i control) Exec(c *CPU) { i.fn(c) }

// prefix is the 0xCB opcode. Decode resolves the extended instruction
// itself; prefix only delegates when it is executed through the base
// table directly.
type prefix struct{}

func (prefix) extended(c *CPU) Opcode { return InstructionSetCB[c.bus.Read(c.PC+1)] }
func (p prefix) Exec(c *CPU) { p.extended(c).Exec(c) }
func (prefix) Size() uint16 { return 2 }
func (p prefix) Cycles(c *CPU) uint8 { return p.extended(c).Cycles(c) }
func (prefix) String() string { return "PREFIX CB" }

// notImplemented is any opcode without a defined behaviour. Executing
// one is fatal.
type notImplemented struct {
	opcode   uint8
	extended bool
}

func (n notImplemented) Exec(c *CPU) {
	panic(&UnimplementedInstructionError{Opcode: n.opcode, PC: c.PC, Extended: n.extended})
}

func (notImplemented) Size() uint16 { return 1 }
func (notImplemented) Cycles(*CPU) uint8 { return 0 }
func (n notImplemented) String() string { return fmt.Sprintf("UNDEFINED 0x%02X", n.opcode) }
