// Package apu models the register surface of the sound unit. No audio
// is synthesized: the registers only hold what the program writes, so
// that programs probing them read back sensible values.
package apu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// APU represents the GameBoy's audio processing unit. It comprises 4
// channels: 2 pulse channels, a wave channel and a noise channel. Each
// channel is controlled by a set of registers between types.NR10 and
// types.NR52, and the wave channel plays the 32 samples stored in
// wave RAM.
type APU struct {
	enabled bool

	registers [types.NR52 - types.NR10]uint8
	waveRAM   [16]uint8
}

// New returns a new APU, powered on.
func New() *APU {
	return &APU{enabled: true}
}

// Read returns the value of a sound register or wave RAM.
func (a *APU) Read(address uint16) uint8 {
	switch {
	case address == types.NR52:
		if a.enabled {
			return 0xF0
		}
		return 0x70
	case address >= types.NR10 && address < types.NR52:
		return a.registers[address-types.NR10]
	case address >= types.WaveRAMStart && address <= types.WaveRAMEnd:
		return a.waveRAM[address-types.WaveRAMStart]
	}
	panic(fmt.Sprintf("apu: illegal read from address 0x%04X", address))
}

// Write sets the value of a sound register or wave RAM. Powering off
// the APU through types.NR52 clears every sound register, and the
// registers ignore writes until it is powered on again.
func (a *APU) Write(address uint16, value uint8) {
	switch {
	case address == types.NR52:
		a.enabled = value&types.Bit7 != 0
		if !a.enabled {
			a.registers = [types.NR52 - types.NR10]uint8{}
		}
	case address >= types.NR10 && address < types.NR52:
		if a.enabled {
			a.registers[address-types.NR10] = value
		}
	case address >= types.WaveRAMStart && address <= types.WaveRAMEnd:
		a.waveRAM[address-types.WaveRAMStart] = value
	default:
		panic(fmt.Sprintf("apu: illegal write to address 0x%04X", address))
	}
}
