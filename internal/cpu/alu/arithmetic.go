package alu

// Add adds b to a.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func Add(a, b uint8) Result[uint8] {
	return AddWithCarry(a, b, 0)
}

// AddWithCarry adds b and carry to a. carry must be 0 or 1.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func AddWithCarry(a, b, carry uint8) Result[uint8] {
	assertCarry("adc", carry)
	sum := uint16(a) + uint16(b) + uint16(carry)
	return result8(uint8(sum), Flags{
		HalfCarry: a&0xF+b&0xF+carry > 0xF,
		Carry:     sum > 0xFF,
	})
}

// Sub subtracts b from a.
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func Sub(a, b uint8) Result[uint8] {
	return SubWithCarry(a, b, 0)
}

// SubWithCarry subtracts b and carry from a. carry must be 0 or 1.
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func SubWithCarry(a, b, carry uint8) Result[uint8] {
	assertCarry("sbc", carry)
	diff := uint16(a) - uint16(b) - uint16(carry)
	return result8(uint8(diff), Flags{
		Subtract:  true,
		HalfCarry: (a&0xF-b&0xF-carry)&0x10 != 0,
		Carry:     diff&0x100 != 0,
	})
}

// And performs a bitwise AND of a and b.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func And(a, b uint8) Result[uint8] {
	return result8(a&b, Flags{HalfCarry: true})
}

// Or performs a bitwise OR of a and b.
//
//	Z - Set if result is zero.
//	N, H, C - Reset.
func Or(a, b uint8) Result[uint8] {
	return result8(a|b, Flags{})
}

// Xor performs a bitwise XOR of a and b.
//
//	Z - Set if result is zero.
//	N, H, C - Reset.
func Xor(a, b uint8) Result[uint8] {
	return result8(a^b, Flags{})
}

// Inc increments a by one. The carry flag of the result is always
// reset, as INC leaves the carry flag of the CPU untouched.
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func Inc(a uint8) Result[uint8] {
	return result8(a+1, Flags{HalfCarry: a&0xF == 0xF})
}

// Dec decrements a by one. As with Inc, the carry flag of the
// result is meaningless.
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func Dec(a uint8) Result[uint8] {
	return result8(a-1, Flags{Subtract: true, HalfCarry: a&0xF == 0})
}

// Add16 adds b to a, as performed by ADD HL,rr. The zero flag is
// computed from the result, but ADD HL,rr preserves the zero flag of
// the CPU.
//
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func Add16(a, b uint16) Result[uint16] {
	sum := uint32(a) + uint32(b)
	return Result[uint16]{
		Value: uint16(sum),
		Flags: Flags{
			Zero:      uint16(sum) == 0,
			HalfCarry: a&0xFFF+b&0xFFF > 0xFFF,
			Carry:     sum > 0xFFFF,
		},
	}
}

// AddSigned adds the signed immediate b to a, as performed by
// ADD SP,e8 and LD HL,SP+e8. A negative b is applied by subtracting
// its two's complement, while the flags are always taken from the
// unsigned addition of the low byte of a and b.
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func AddSigned(a uint16, b uint8) Result[uint16] {
	var v uint16
	if b&0x80 != 0 {
		v = a - uint16(^b+1)
	} else {
		v = a + uint16(b)
	}
	return Result[uint16]{
		Value: v,
		Flags: Flags{
			HalfCarry: a&0xF+uint16(b&0xF) > 0xF,
			Carry:     a&0xFF+uint16(b) > 0xFF,
		},
	}
}

// DecimalAdjust adjusts a so that it holds the BCD representation of
// the previous addition or subtraction, using the flags it produced.
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func DecimalAdjust(a uint8, f Flags) Result[uint8] {
	carry := f.Carry
	if !f.Subtract {
		if f.Carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if f.HalfCarry || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if f.Carry {
			a -= 0x60
		}
		if f.HalfCarry {
			a -= 0x06
		}
	}
	return result8(a, Flags{Subtract: f.Subtract, Carry: carry})
}
