package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/cpu/alu"
)

type shiftFn = func(v uint8, f alu.Flags) alu.Result[uint8]

func rlc(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.RotateLeft(v) }
func rrc(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.RotateRight(v) }
func rl(v uint8, f alu.Flags) alu.Result[uint8] { return alu.RotateLeftThroughCarry(v, f.CarryBit()) }
func rr(v uint8, f alu.Flags) alu.Result[uint8] { return alu.RotateRightThroughCarry(v, f.CarryBit()) }
func sla(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.ShiftLeft(v) }
func sra(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.ShiftRightArithmetic(v) }
func swap(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.Swap(v) }
func srl(v uint8, _ alu.Flags) alu.Result[uint8] { return alu.ShiftRightLogical(v) }

// shiftOps are selected by bits 3-5 of 0x00-0x3F in the extended set.
var shiftOps = [8]struct {
	name string
	fn   shiftFn
}{
	{"RLC", rlc}, {"RRC", rrc}, {"RL", rl}, {"RR", rr},
	{"SLA", sla}, {"SRA", sra}, {"SWAP", swap}, {"SRL", srl},
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for r := uint8(0); r < 8; r++ {
		target := r8(r)

		// (HL) needs an extra read and write to memory
		cycles, bitCycles := uint8(8), uint8(8)
		if r == 6 {
			cycles, bitCycles = 16, 12
		}

		for k, s := range shiftOps {
			InstructionSetCB[uint8(k)<<3+r] = shift{op(s.name+" "+target.String(), 2, cycles), s.fn, target, false}
		}

		for b := uint8(0); b < 8; b++ {
			name := fmt.Sprintf("%d,%s", b, target)
			InstructionSetCB[0x40+b<<3+r] = bitTest{op("BIT "+name, 2, bitCycles), b, target}
			InstructionSetCB[0x80+b<<3+r] = bitSet{op("RES "+name, 2, cycles), b, target, false}
			InstructionSetCB[0xC0+b<<3+r] = bitSet{op("SET "+name, 2, cycles), b, target, true}
		}
	}
}
