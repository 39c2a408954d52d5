// Package ppu implements the register window of the LCD and the mode
// state machine that drives its interrupts. Pixels are not rendered
// here: once per frame a snapshot of the video state is handed to
// whichever renderer is attached.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit, as far as
// its registers and timing are concerned.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
//   - [Hacktix GBEDG](https://hacktix.github.io/GBEDG/ppu/)
type PPU struct {
	lcd.Controller
	lcd.Status

	scan lcd.Scanline

	// Scroll registers
	scy, scx uint8 // Background viewport position
	wy, wx   uint8 // Window Position

	lyc uint8 // LYC register value

	// Palettes
	bgp, obp0, obp1 uint8
	bcps            uint8     // CGB palette index, bit 7 auto increments
	palette         [64]uint8 // CGB background palette RAM
	vbk             uint8

	dma uint8 // last value written to types.DMA

	// statLine is the current level of the STAT interrupt line.
	statLine bool

	// VRAM holds the tile data and tile maps (types.VRAMStart).
	VRAM [0x2000]uint8
	// OAM holds the sprite attributes (types.OAMStart).
	OAM [0xA0]uint8

	frames chan<- Frame
	frame  uint64

	irq *interrupts.Service
}

// New returns a new PPU with the LCD powered off.
func New(irq *interrupts.Service) *PPU {
	p := &PPU{irq: irq}
	p.Controller.Write(0x00)
	p.scan.Reset()
	return p
}

// AttachFrames sets the channel frames are offered to. Sending never
// blocks; a frame is dropped when the receiver is not ready.
func (p *PPU) AttachFrames(frames chan<- Frame) {
	p.frames = frames
}

// Synchronize advances the mode state machine by the given number
// of cycles.
func (p *PPU) Synchronize(cycles uint32) {
	if !p.Enabled {
		return
	}

	p.scan.Accumulate(cycles)
	for p.scan.Next() {
		if p.scan.Mode == lcd.VerticalBlank && p.scan.Line == lcd.VisibleLines {
			p.irq.RequestVBlank()
			p.sendFrame()
		}
		p.updateStat()
	}
	p.updateStat()
}

// Mode returns the current mode of the LCD. A powered off LCD reports
// lcd.HorizontalBlank.
func (p *PPU) Mode() lcd.Mode {
	if !p.Enabled {
		return lcd.HorizontalBlank
	}
	return p.scan.Mode
}

// LY returns the current line, which is held at 0 while the LCD is
// powered off.
func (p *PPU) LY() uint8 {
	if !p.Enabled {
		return 0
	}
	return p.scan.Line
}

func (p *PPU) coincidence() bool {
	return p.LY() == p.lyc
}

// updateStat requests a STAT interrupt on the rising edge of the
// STAT interrupt line.
func (p *PPU) updateStat() {
	line := p.Enabled && p.Status.Line(p.scan.Mode, p.coincidence())
	if line && !p.statLine {
		p.irq.RequestLCDStat()
	}
	p.statLine = line
}

// Read returns the value of the register at the given address.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case types.LCDC:
		return p.Controller.Read()
	case types.STAT:
		return p.Status.Read(p.Mode(), p.coincidence())
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.LY()
	case types.LYC:
		return p.lyc
	case types.DMA:
		return p.dma
	case types.BGP:
		return p.bgp
	case types.OBP0:
		return p.obp0
	case types.OBP1:
		return p.obp1
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	case types.VBK:
		return p.vbk | 0xFE
	case types.BCPS:
		return p.bcps | 0x40
	case types.BCPD:
		return p.palette[p.bcps&0x3F]
	}
	panic(fmt.Sprintf("ppu: illegal read from address 0x%04X", address))
}

// Write writes the value to the register at the given address. Writes
// to types.LY are ignored.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case types.LCDC:
		wasEnabled := p.Enabled
		p.Controller.Write(value)
		if wasEnabled != p.Enabled {
			p.scan.Reset()
			p.updateStat()
		}
	case types.STAT:
		p.Status.Write(value)
		p.updateStat()
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LY:
	case types.LYC:
		p.lyc = value
		p.updateStat()
	case types.DMA:
		p.dma = value
	case types.BGP:
		p.bgp = value
	case types.OBP0:
		p.obp0 = value
	case types.OBP1:
		p.obp1 = value
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	case types.VBK:
		p.vbk = value & 0x01
	case types.BCPS:
		p.bcps = value & 0xBF
	case types.BCPD:
		p.palette[p.bcps&0x3F] = value
		if p.bcps&types.Bit7 != 0 {
			p.bcps = p.bcps&0x80 | (p.bcps+1)&0x3F
		}
	default:
		panic(fmt.Sprintf("ppu: illegal write to address 0x%04X", address))
	}
}
