package alu

// TestBit tests bit index of v. The carry flag of the result is
// meaningless, BIT leaves the carry flag of the CPU untouched.
//
//	Z - Set if bit index of v is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func TestBit(v, index uint8) Flags {
	assertBit("bit", index)
	return Flags{Zero: v&(1<<index) == 0, HalfCarry: true}
}

// SetBit sets bit index of v.
func SetBit(v, index uint8) uint8 {
	assertBit("set", index)
	return v | 1<<index
}

// ResetBit resets bit index of v.
func ResetBit(v, index uint8) uint8 {
	assertBit("res", index)
	return v &^ (1 << index)
}
