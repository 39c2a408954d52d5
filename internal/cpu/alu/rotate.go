package alu

// RotateLeft rotates a left by one bit, bit 7 moving into both bit 0
// and the carry flag. (RLC)
func RotateLeft(a uint8) Result[uint8] {
	return result8(a<<1|a>>7, Flags{Carry: a&0x80 != 0})
}

// RotateRight rotates a right by one bit, bit 0 moving into both bit 7
// and the carry flag. (RRC)
func RotateRight(a uint8) Result[uint8] {
	return result8(a>>1|a<<7, Flags{Carry: a&0x01 != 0})
}

// RotateLeftThroughCarry rotates a left through the carry flag. carry
// must be 0 or 1. (RL)
func RotateLeftThroughCarry(a, carry uint8) Result[uint8] {
	assertCarry("rl", carry)
	return result8(a<<1|carry, Flags{Carry: a&0x80 != 0})
}

// RotateRightThroughCarry rotates a right through the carry flag.
// carry must be 0 or 1. (RR)
func RotateRightThroughCarry(a, carry uint8) Result[uint8] {
	assertCarry("rr", carry)
	return result8(a>>1|carry<<7, Flags{Carry: a&0x01 != 0})
}

// ShiftLeft shifts a left into the carry flag, bit 0 is reset. (SLA)
func ShiftLeft(a uint8) Result[uint8] {
	return result8(a<<1, Flags{Carry: a&0x80 != 0})
}

// ShiftRightArithmetic shifts a right into the carry flag, bit 7 is
// unchanged. (SRA)
func ShiftRightArithmetic(a uint8) Result[uint8] {
	return result8(a>>1|a&0x80, Flags{Carry: a&0x01 != 0})
}

// ShiftRightLogical shifts a right into the carry flag, bit 7 is
// reset. (SRL)
func ShiftRightLogical(a uint8) Result[uint8] {
	return result8(a>>1, Flags{Carry: a&0x01 != 0})
}

// Swap exchanges the upper and lower nibbles of a.
func Swap(a uint8) Result[uint8] {
	return result8(a<<4|a>>4, Flags{})
}
