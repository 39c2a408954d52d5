package debug

import (
	"strings"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// SerialMonitor is a mmu.WriteHook that collects the bytes a program
// sends over the serial port. A byte is collected when a transfer is
// started on the internal clock (0x81 written to types.SC), which is
// how test programs print their results.
type SerialMonitor struct {
	output strings.Builder
	data   uint8
}

// NewSerialMonitor returns an empty SerialMonitor.
func NewSerialMonitor() *SerialMonitor {
	return &SerialMonitor{}
}

// AfterWrite implements mmu.WriteHook.
func (m *SerialMonitor) AfterWrite(address uint16, value uint8) {
	switch address {
	case types.SB:
		m.data = value
	case types.SC:
		if value == types.Bit7|types.Bit0 {
			m.output.WriteByte(m.data)
		}
	}
}

// Output returns everything received so far.
func (m *SerialMonitor) Output() string {
	return m.output.String()
}

// Passed reports whether the program has printed "Passed".
func (m *SerialMonitor) Passed() bool {
	return strings.Contains(m.output.String(), "Passed")
}

// Failed reports whether the program has printed "Failed".
func (m *SerialMonitor) Failed() bool {
	return strings.Contains(m.output.String(), "Failed")
}

// Done reports whether the program has printed its result.
func (m *SerialMonitor) Done() bool {
	return m.Passed() || m.Failed()
}
