package alu

import "fmt"

// InvalidArgumentError is raised when an ALU function is called with an
// argument outside of its domain, such as a bit index above 7 or a carry
// that is neither 0 nor 1. It indicates a malformed instruction table and
// is never recovered locally.
type InvalidArgumentError struct {
	Op       string
	Argument string
	Value    uint8
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("alu: invalid argument to %s: %s=%d", e.Op, e.Argument, e.Value)
}

func assertCarry(op string, carry uint8) {
	if carry > 1 {
		panic(InvalidArgumentError{Op: op, Argument: "carry", Value: carry})
	}
}

func assertBit(op string, index uint8) {
	if index > 7 {
		panic(InvalidArgumentError{Op: op, Argument: "bit", Value: index})
	}
}
