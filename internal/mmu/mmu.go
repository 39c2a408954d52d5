// Package mmu provides a memory management unit for the Game Boy. The
// MMU owns the memory and every memory mapped device, and routes each
// read and write by address to exactly one of them.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/apu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/serial"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Sentinel is the value memory holds before it is first written.
const Sentinel = 0xFF

// UnmappedAddressError is raised when an address that no region owns
// is read or written.
type UnmappedAddressError struct {
	Address uint16
	Write   bool
}

func (e *UnmappedAddressError) Error() string {
	if e.Write {
		return fmt.Sprintf("mmu: write to unmapped address 0x%04X", e.Address)
	}
	return fmt.Sprintf("mmu: read from unmapped address 0x%04X", e.Address)
}

// IOBus is implemented by every memory mapped device.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// WriteHook observes every write to the bus.
type WriteHook interface {
	AfterWrite(address uint16, value uint8)
}

// WriteHookFunc adapts a function to a WriteHook.
type WriteHookFunc func(address uint16, value uint8)

// AfterWrite implements WriteHook.
func (f WriteHookFunc) AfterWrite(address uint16, value uint8) { f(address, value) }

// address is the owner of a single address.
type address struct {
	Read  func(uint16) uint8
	Write func(uint16, uint8)
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [65536]*address

	// 0x0000 - 0x7FFF - ROM (32kB)
	rom ram.RAM

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF40 - 0xFF4B, 0xFF4F, 0xFF68 - 0xFF69 - LCD registers
	Video *ppu.PPU

	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM ram.RAM

	// 0xC000 - 0xCFFF, 0xD000 - 0xDFFF - Work RAM (2 x 4kB)
	wRAM [2]ram.RAM

	// 0xFF00 - Joypad
	Joypad *joypad.State
	// 0xFF01 - 0xFF02 - Serial
	Serial *serial.Controller
	// 0xFF04 - 0xFF07 - Timer
	Timer *timer.Controller
	// 0xFF0F, 0xFFFF - Interrupts
	IRQ *interrupts.Service
	// 0xFF10 - 0xFF26 - Sound registers
	// 0xFF30 - 0xFF3F - Wave Pattern RAM (16B)
	Sound *apu.APU

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	hooks []WriteHook

	Log log.Logger
}

// NewMMU returns a new MMU with program mapped at 0x0000, and every
// device in its power on state. Only the first 32kB of program are
// addressable.
func NewMMU(program []byte) *MMU {
	irq := interrupts.NewService()
	m := &MMU{
		rom:    ram.NewRAM(0x8000, Sentinel),
		eRAM:   ram.NewRAM(0x2000, Sentinel),
		wRAM:   [2]ram.RAM{ram.NewRAM(0x1000, Sentinel), ram.NewRAM(0x1000, Sentinel)},
		zRAM:   ram.NewRAM(0x7F, Sentinel),
		IRQ:    irq,
		Video:  ppu.New(irq),
		Joypad: joypad.New(irq),
		Serial: serial.NewController(irq),
		Timer:  timer.NewController(irq),
		Sound:  apu.New(),
		Log:    log.NewNullLogger(),
	}
	m.init()
	m.load(program)

	return m
}

func (m *MMU) load(program []byte) {
	if len(program) > 0x8000 {
		m.Log.Errorf("mmu: program is %d bytes, only the first 32kB are mapped", len(program))
		program = program[:0x8000]
	}
	for i, b := range program {
		m.rom.Write(uint16(i), b)
	}
}

func (m *MMU) init() {
	// setup raw memory
	addresses := []address{
		{Read: m.rom.Read, Write: m.rom.Write},
		{Read: readOffset(m.readVRAM, 0x8000), Write: writeOffset(m.writeVRAM, 0x8000)},
		{Read: readOffset(m.eRAM.Read, 0xA000), Write: writeOffset(m.eRAM.Write, 0xA000)},
		{Read: readOffset(m.wRAM[0].Read, 0xC000), Write: writeOffset(m.wRAM[0].Write, 0xC000)},
		{Read: readOffset(m.wRAM[1].Read, 0xD000), Write: writeOffset(m.wRAM[1].Write, 0xD000)},
		{Read: readOffset(m.readOAM, 0xFE00), Write: writeOffset(m.writeOAM, 0xFE00)},
		{Read: readOffset(m.zRAM.Read, 0xFF80), Write: writeOffset(m.zRAM.Write, 0xFF80)},
		{Read: m.Joypad.Read, Write: m.Joypad.Write},
		{Read: m.Serial.Read, Write: m.Serial.Write},
		{Read: m.Timer.Read, Write: m.Timer.Write},
		{Read: m.IRQ.Read, Write: m.IRQ.Write},
		{Read: m.Sound.Read, Write: m.Sound.Write},
		{Read: m.Video.Read, Write: m.Video.Write},
		{Read: m.Video.Read, Write: m.dma},
	}

	m.mapRange(types.ROMStart, types.ROMEnd, &addresses[0])
	m.mapRange(types.VRAMStart, types.VRAMEnd, &addresses[1])
	m.mapRange(types.ERAMStart, types.ERAMEnd, &addresses[2])
	m.mapRange(types.WRAM1Start, types.WRAM1End, &addresses[3])
	m.mapRange(types.WRAM2Start, types.WRAM2End, &addresses[4])
	m.mapRange(types.OAMStart, types.OAMEnd, &addresses[5])
	m.mapRange(types.HRAMStart, types.HRAMEnd, &addresses[6])

	m.mapRange(types.P1, types.P1, &addresses[7])
	m.mapRange(types.SB, types.SC, &addresses[8])
	m.mapRange(types.DIV, types.TAC, &addresses[9])
	m.mapRange(types.IF, types.IF, &addresses[10])
	m.mapRange(types.IE, types.IE, &addresses[10])
	m.mapRange(types.NR10, types.NR52, &addresses[11])
	m.mapRange(types.WaveRAMStart, types.WaveRAMEnd, &addresses[11])
	m.mapRange(types.LCDC, types.WX, &addresses[12])
	m.mapRange(types.VBK, types.VBK, &addresses[12])
	m.mapRange(types.BCPS, types.BCPD, &addresses[12])
	m.mapRange(types.DMA, types.DMA, &addresses[13])
}

func (m *MMU) mapRange(start, end uint16, a *address) {
	for i := uint32(start); i <= uint32(end); i++ {
		m.raw[i] = a
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) readVRAM(addr uint16) uint8 { return m.Video.VRAM[addr] }
func (m *MMU) writeVRAM(addr uint16, v uint8) { m.Video.VRAM[addr] = v }
func (m *MMU) readOAM(addr uint16) uint8 { return m.Video.OAM[addr] }
func (m *MMU) writeOAM(addr uint16, v uint8) { m.Video.OAM[addr] = v }

// dma copies 160 bytes from value<<8 into OAM. Sources in echo RAM
// are mirrored onto work RAM.
func (m *MMU) dma(addr uint16, value uint8) {
	m.Video.Write(addr, value)

	source := uint16(value) << 8
	if source >= 0xE000 {
		source -= 0x2000
	}
	for i := uint16(0); i < uint16(len(m.Video.OAM)); i++ {
		m.Video.OAM[i] = m.Read(source + i)
	}
	m.Log.Debugf("mmu: OAM DMA from 0x%04X", source)
}

// AddHook registers a write hook.
func (m *MMU) AddHook(h WriteHook) {
	m.hooks = append(m.hooks, h)
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	a := m.raw[address]
	if a == nil {
		panic(&UnmappedAddressError{Address: address})
	}
	return a.Read(address)
}

// Write writes the value to the given address, and then notifies
// every write hook.
func (m *MMU) Write(address uint16, value uint8) {
	a := m.raw[address]
	if a == nil {
		panic(&UnmappedAddressError{Address: address, Write: true})
	}
	a.Write(address, value)

	for _, h := range m.hooks {
		h.AfterWrite(address, value)
	}
}

// Read16 returns the little-endian double at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes the double at the given address, low byte first.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Synchronize advances every timed device by the given number of
// cycles.
func (m *MMU) Synchronize(cycles uint32) {
	m.Timer.Synchronize(cycles)
	m.Video.Synchronize(cycles)
	m.Serial.Synchronize(cycles)
}
