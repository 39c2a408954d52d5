package lcd

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Status represents the LCD status register. It contains information about the
// current state of the LCD controller. Its value is stored in types.STAT
// as follows:
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see Mode)  (Read Only)
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool
}

// Write stores the interrupt enable bits of value. The read only bits
// are ignored.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = bits.Test(value, 6)
	s.OAMInterrupt = bits.Test(value, 5)
	s.VBlankInterrupt = bits.Test(value, 4)
	s.HBlankInterrupt = bits.Test(value, 3)
}

// Read returns the value of the status register, for the given mode
// and coincidence flag.
func (s *Status) Read(mode Mode, coincidence bool) uint8 {
	return types.Bit7 | // bit 7 is always set
		bits.From(s.CoincidenceInterrupt, types.Bit6) |
		bits.From(s.OAMInterrupt, types.Bit5) |
		bits.From(s.VBlankInterrupt, types.Bit4) |
		bits.From(s.HBlankInterrupt, types.Bit3) |
		bits.From(coincidence, types.Bit2) |
		uint8(mode)&0x03
}

// Line reports the level of the STAT interrupt line: whether any of
// the enabled sources is currently active. An interrupt is requested
// on the rising edge of the line.
func (s *Status) Line(mode Mode, coincidence bool) bool {
	return s.CoincidenceInterrupt && coincidence ||
		s.HBlankInterrupt && mode == HorizontalBlank ||
		s.VBlankInterrupt && mode == VerticalBlank ||
		s.OAMInterrupt && mode == SearchData
}
