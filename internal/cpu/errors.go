package cpu

import "fmt"

// UnimplementedInstructionError is raised when the CPU decodes an
// opcode that has no instruction.
type UnimplementedInstructionError struct {
	Opcode   uint8
	PC       uint16
	Extended bool
}

func (e *UnimplementedInstructionError) Error() string {
	if e.Extended {
		return fmt.Sprintf("cpu: unimplemented instruction 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented instruction 0x%02X at 0x%04X", e.Opcode, e.PC)
}
