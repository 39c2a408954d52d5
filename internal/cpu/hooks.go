package cpu

// ExecutionHook observes every instruction before it is executed.
type ExecutionHook interface {
	BeforeExecute(c *CPU, op Opcode)
}

// ExecutionHookFunc adapts a function to an ExecutionHook.
type ExecutionHookFunc func(c *CPU, op Opcode)

// BeforeExecute implements ExecutionHook.
func (f ExecutionHookFunc) BeforeExecute(c *CPU, op Opcode) { f(c, op) }
