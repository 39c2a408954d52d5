// Package alu implements the arithmetic logic unit of the SM83. Every
// function is pure: it returns the computed value alongside the flags
// the operation produced, and callers decide which of those flags are
// copied into the flag register.
package alu

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Flags holds the four meaningful bits of the F register.
//
//	Bit 7 - Z - Zero
//	Bit 6 - N - Subtract
//	Bit 5 - H - Half carry
//	Bit 4 - C - Carry
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into the upper nibble of a byte, as stored
// in the F register. The lower nibble is always zero.
func (f Flags) Byte() uint8 {
	return bits.From(f.Zero, types.Bit7) |
		bits.From(f.Subtract, types.Bit6) |
		bits.From(f.HalfCarry, types.Bit5) |
		bits.From(f.Carry, types.Bit4)
}

// CarryBit returns the carry flag as 0 or 1.
func (f Flags) CarryBit() uint8 {
	return bits.From(f.Carry, uint8(1))
}

// FromByte unpacks the upper nibble of b.
func FromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, 7),
		Subtract:  bits.Test(b, 6),
		HalfCarry: bits.Test(b, 5),
		Carry:     bits.Test(b, 4),
	}
}

// Result is the outcome of an ALU operation.
type Result[T uint8 | uint16] struct {
	Value T
	Flags Flags
}

func result8(v uint8, f Flags) Result[uint8] {
	f.Zero = v == 0
	return Result[uint8]{Value: v, Flags: f}
}
