package interrupts

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// Interrupt is a source of interrupts, identified by the bit it
// occupies in the IF and IE registers and the address the CPU jumps
// to when servicing it.
type Interrupt struct {
	Vector uint16
	Mask   uint8
}

var (
	// VBlank is requested every time the PPU enters VBlank mode
	// (lcd.VerticalBlank).
	VBlank = Interrupt{Vector: 0x0040, Mask: types.Bit0}
	// LCDStat is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDStat = Interrupt{Vector: 0x0048, Mask: types.Bit1}
	// Timer is requested when the timer overflows (types.TIMA > 0xFF).
	Timer = Interrupt{Vector: 0x0050, Mask: types.Bit2}
	// Serial is requested when a serial transfer is completed.
	Serial = Interrupt{Vector: 0x0058, Mask: types.Bit3}
	// Joypad is requested when any of types.P1 bits 0-3 go from
	// high to low, if the corresponding select bit is set to 0.
	Joypad = Interrupt{Vector: 0x0060, Mask: types.Bit4}
)

// Priority lists the interrupts from highest to lowest priority.
var Priority = [5]Interrupt{VBlank, LCDStat, Timer, Serial, Joypad}

// Service is the interrupt service, used to request
// interrupts and to get the next interrupt to dispatch.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// and the IME of the CPU is set, the CPU will jump to the
// interrupt vector, and the corresponding bit in the Flag
// register will be cleared.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(i Interrupt) {
	s.Flag |= i.Mask
}

func (s *Service) RequestVBlank() { s.Request(VBlank) }
func (s *Service) RequestLCDStat() { s.Request(LCDStat) }
func (s *Service) RequestTimer() { s.Request(Timer) }
func (s *Service) RequestSerial() { s.Request(Serial) }
func (s *Service) RequestJoypad() { s.Request(Joypad) }

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Flag & s.Enable & 0x1F
}

// Next returns the highest priority pending interrupt.
func (s *Service) Next() (Interrupt, bool) {
	pending := s.Pending()
	for _, i := range Priority {
		if pending&i.Mask != 0 {
			return i, true
		}
	}
	return Interrupt{}, false
}

// Acknowledge clears the request of the interrupt.
func (s *Service) Acknowledge(i Interrupt) {
	s.Flag &^= i.Mask
}

// Read returns the value of the IF or IE register.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	panic(fmt.Sprintf("interrupts: illegal read from address 0x%04X", address))
}

// Write sets the value of the IF or IE register.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	default:
		panic(fmt.Sprintf("interrupts: illegal write to address 0x%04X", address))
	}
}
