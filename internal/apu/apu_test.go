package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func TestAPU_Registers(t *testing.T) {
	a := New()
	a.Write(types.NR50, 0x77)
	a.Write(types.NR51, 0xF3)
	a.Write(types.WaveRAMStart+3, 0xAB)

	assert.Equal(t, uint8(0x77), a.Read(types.NR50))
	assert.Equal(t, uint8(0xF3), a.Read(types.NR51))
	assert.Equal(t, uint8(0xAB), a.Read(types.WaveRAMStart+3))
	assert.Equal(t, uint8(0xF0), a.Read(types.NR52))
}

func TestAPU_PowerOff(t *testing.T) {
	a := New()
	a.Write(types.NR50, 0x77)
	a.Write(types.WaveRAMStart, 0x12)
	a.Write(types.NR52, 0x00)

	assert.Zero(t, a.Read(types.NR50))
	assert.Equal(t, uint8(0x70), a.Read(types.NR52))

	a.Write(types.NR51, 0xFF)
	assert.Zero(t, a.Read(types.NR51))

	// wave RAM is unaffected by power
	assert.Equal(t, uint8(0x12), a.Read(types.WaveRAMStart))
}

func TestAPU_Unmapped(t *testing.T) {
	assert.Panics(t, func() { New().Read(types.LCDC) })
}
