package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/cpu/alu"
)

// InstructionSet holds the base instruction set, indexed by opcode.
var InstructionSet [256]Opcode

// InstructionSetCB holds the extended instruction set, reached through
// the 0xCB prefix and indexed by the byte following it.
var InstructionSetCB [256]Opcode

// disallowedOpcodes are the base opcodes that have no instruction on
// the SM83. Executing one locks up the hardware.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// registerPairs are the pairs selected by bits 4-5 of 16-bit loads
// and arithmetic.
var registerPairs = [4]Reg16{BC, DE, HL, SP}

// stackPairs are the pairs selected by bits 4-5 of PUSH and POP.
var stackPairs = [4]Reg16{BC, DE, HL, AF}

// conditions are selected by bits 3-4 of conditional branches.
var conditions = [4]Condition{NotZero, Zero, NotCarry, Carry}

type aluFn = func(a, b uint8, f alu.Flags) alu.Result[uint8]

// arithmeticOps are selected by bits 3-5 of 0x80-0xBF and 0xC6-0xFE.
var arithmeticOps = [8]struct {
	name string
	fn   aluFn
}{
	{"ADD A,", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.Add(a, b) }},
	{"ADC A,", func(a, b uint8, f alu.Flags) alu.Result[uint8] { return alu.AddWithCarry(a, b, f.CarryBit()) }},
	{"SUB ", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.Sub(a, b) }},
	{"SBC A,", func(a, b uint8, f alu.Flags) alu.Result[uint8] { return alu.SubWithCarry(a, b, f.CarryBit()) }},
	{"AND ", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.And(a, b) }},
	{"XOR ", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.Xor(a, b) }},
	{"OR ", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.Or(a, b) }},
	{"CP ", func(a, b uint8, _ alu.Flags) alu.Result[uint8] { return alu.Sub(a, b) }},
}

const cp = 7

func init() {
	for i := range InstructionSet {
		InstructionSet[i] = notImplemented{opcode: uint8(i)}
	}

	InstructionSet[0x00] = nop{op("NOP", 1, 4)}
	InstructionSet[0x08] = newLoad[uint16](absolute16{}, SP, 3, 20)
	InstructionSet[0xCB] = prefix{}

	generateLoadInstructions()
	generateArithmeticInstructions()
	generateJumpInstructions()
	generateStackInstructions()
	generateControlInstructions()

	for _, opcode := range disallowedOpcodes {
		InstructionSet[opcode] = notImplemented{opcode: opcode}
	}
}

func generateLoadInstructions() {
	for i, pair := range registerPairs {
		// LD rr, d16
		InstructionSet[0x01+i<<4] = newLoad[uint16](pair, immediate16{}, 3, 12)
	}

	indirect := [4]Operand[uint8]{pointer{BC}, pointer{DE}, hlIncrement, hlDecrement}
	for i, ptr := range indirect {
		// LD (rr), A
		InstructionSet[0x02+i<<4] = newLoad[uint8](ptr, A, 1, 8)
		// LD A, (rr)
		InstructionSet[0x0A+i<<4] = newLoad[uint8](A, ptr, 1, 8)
	}

	for r := uint8(0); r < 8; r++ {
		dst := r8(r)
		// LD r, d8
		if r == 6 {
			InstructionSet[0x06+r<<3] = newLoad[uint8](dst, immediate8{}, 2, 12)
		} else {
			InstructionSet[0x06+r<<3] = newLoad[uint8](dst, immediate8{}, 2, 8)
		}

		// LD r, r'
		for s := uint8(0); s < 8; s++ {
			opcode := 0x40 + r<<3 + s
			if opcode == 0x76 {
				continue // HALT
			}
			cycles := uint8(4)
			if r == 6 || s == 6 {
				cycles = 8
			}
			InstructionSet[opcode] = newLoad[uint8](dst, r8(s), 1, cycles)
		}
	}

	InstructionSet[0xE0] = load[uint8]{op("LDH (a8),A", 2, 12), highPage{}, A}
	InstructionSet[0xF0] = load[uint8]{op("LDH A,(a8)", 2, 12), A, highPage{}}
	InstructionSet[0xE2] = newLoad[uint8](highPageC{}, A, 1, 8)
	InstructionSet[0xF2] = newLoad[uint8](A, highPageC{}, 1, 8)
	InstructionSet[0xEA] = newLoad[uint8](absolute{}, A, 3, 16)
	InstructionSet[0xFA] = newLoad[uint8](A, absolute{}, 3, 16)

	InstructionSet[0xF8] = newLoad[uint16](HL, stackRelative{}, 2, 12)
	InstructionSet[0xF9] = newLoad[uint16](SP, HL, 1, 8)
}

func generateArithmeticInstructions() {
	for i, pair := range registerPairs {
		InstructionSet[0x03+i<<4] = increment16{op("INC "+pair.String(), 1, 8), pair, 1}
		InstructionSet[0x0B+i<<4] = increment16{op("DEC "+pair.String(), 1, 8), pair, 0xFFFF}
		InstructionSet[0x09+i<<4] = addHL{op("ADD HL,"+pair.String(), 1, 8), pair}
	}

	for r := uint8(0); r < 8; r++ {
		target := r8(r)
		cycles := uint8(4)
		if r == 6 {
			cycles = 12
		}
		InstructionSet[0x04+r<<3] = increment{op("INC "+target.String(), 1, cycles), target, false}
		InstructionSet[0x05+r<<3] = increment{op("DEC "+target.String(), 1, cycles), target, true}
	}

	for k, arith := range arithmeticOps {
		for s := uint8(0); s < 8; s++ {
			src := r8(s)
			cycles := uint8(4)
			if s == 6 {
				cycles = 8
			}
			InstructionSet[0x80+uint8(k)<<3+s] = arithmetic{op(arith.name+src.String(), 1, cycles), arith.fn, src, k == cp}
		}
		InstructionSet[0xC6+uint8(k)<<3] = arithmetic{op(arith.name+"d8", 2, 8), arith.fn, immediate8{}, k == cp}
	}

	// ADD SP, e8
	InstructionSet[0xE8] = load[uint16]{op("ADD SP,e8", 2, 16), SP, stackRelative{}}

	InstructionSet[0x07] = shift{op("RLCA", 1, 4), rlc, A, true}
	InstructionSet[0x0F] = shift{op("RRCA", 1, 4), rrc, A, true}
	InstructionSet[0x17] = shift{op("RLA", 1, 4), rl, A, true}
	InstructionSet[0x1F] = shift{op("RRA", 1, 4), rr, A, true}
}

func generateJumpInstructions() {
	InstructionSet[0xC3] = jump{branch{op("JP a16", 3, 16), Always, 16}, immediate16{}}
	InstructionSet[0xE9] = jump{branch{op("JP HL", 1, 4), Always, 4}, HL}
	InstructionSet[0x18] = jumpRelative{branch{op("JR e8", 2, 12), Always, 12}}
	InstructionSet[0xCD] = call{branch{op("CALL a16", 3, 24), Always, 24}}
	InstructionSet[0xC9] = ret{branch{op("RET", 1, 16), Always, 16}, false}
	InstructionSet[0xD9] = ret{branch{op("RETI", 1, 16), Always, 16}, true}

	for i, cond := range conditions {
		InstructionSet[0xC2+i<<3] = jump{branch{op(branchName("JP", cond, "a16"), 3, 16), cond, 12}, immediate16{}}
		InstructionSet[0x20+i<<3] = jumpRelative{branch{op(branchName("JR", cond, "e8"), 2, 12), cond, 8}}
		InstructionSet[0xC4+i<<3] = call{branch{op(branchName("CALL", cond, "a16"), 3, 24), cond, 12}}
		InstructionSet[0xC0+i<<3] = ret{branch{op(branchName("RET", cond, ""), 1, 20), cond, 8}, false}
	}

	for i := 0; i < 8; i++ {
		vector := uint16(i << 3)
		InstructionSet[0xC7+i<<3] = rst{op(fmt.Sprintf("RST %02XH", vector), 1, 16), vector}
	}
}

func generateStackInstructions() {
	for i, pair := range stackPairs {
		InstructionSet[0xC1+i<<4] = pop{op("POP "+pair.String(), 1, 12), pair}
		InstructionSet[0xC5+i<<4] = push{op("PUSH "+pair.String(), 1, 16), pair}
	}
}

func generateControlInstructions() {
	InstructionSet[0x10] = control{op("STOP", 2, 4), func(*CPU) {}}
	InstructionSet[0x76] = control{op("HALT", 1, 4), (*CPU).halt}
	InstructionSet[0xF3] = control{op("DI", 1, 4), func(c *CPU) {
		c.IME = false
		c.eiDelay = 0
	}}
	InstructionSet[0xFB] = control{op("EI", 1, 4), func(c *CPU) {
		if !c.IME {
			c.eiDelay = 2
		}
	}}
	InstructionSet[0x27] = control{op("DAA", 1, 4), func(c *CPU) {
		r := alu.DecimalAdjust(c.A(), c.Flags())
		c.SetFlags(r.Flags)
		c.SetA(r.Value)
	}}
	InstructionSet[0x2F] = control{op("CPL", 1, 4), func(c *CPU) {
		f := c.Flags()
		f.Subtract, f.HalfCarry = true, true
		c.SetFlags(f)
		c.SetA(^c.A())
	}}
	InstructionSet[0x37] = control{op("SCF", 1, 4), func(c *CPU) {
		f := c.Flags()
		f.Subtract, f.HalfCarry, f.Carry = false, false, true
		c.SetFlags(f)
	}}
	InstructionSet[0x3F] = control{op("CCF", 1, 4), func(c *CPU) {
		f := c.Flags()
		f.Subtract, f.HalfCarry, f.Carry = false, false, !f.Carry
		c.SetFlags(f)
	}}
}
