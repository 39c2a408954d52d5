// Package bits provides helpers for testing and altering single
// bits of hardware registers.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// From returns mask if the condition is true, and 0 otherwise. It is
// used to pack boolean register fields back into their byte.
func From[T constraints.Unsigned](cond bool, mask T) T {
	if cond {
		return mask
	}
	return 0
}
