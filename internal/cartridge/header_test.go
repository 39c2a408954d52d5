package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rom(title string, typ, romSize, ramSize uint8) []byte {
	b := make([]byte, 0x8000)
	copy(b[0x0134:], title)
	b[0x0147] = typ
	b[0x0148] = romSize
	b[0x0149] = ramSize

	var sum uint8
	for _, v := range b[0x0134:0x014D] {
		sum = sum - v - 1
	}
	b[0x014D] = sum
	return b
}

func TestParseHeader(t *testing.T) {
	h, ok := ParseHeader(rom("CPU_INSTRS", 0x01, 0x01, 0x00))
	assert.True(t, ok)
	assert.Equal(t, "CPU_INSTRS", h.Title)
	assert.Equal(t, MBC1, h.CartridgeType)
	assert.True(t, h.CartridgeType.Banked())
	assert.Equal(t, uint(64*1024), h.ROMSize)
	assert.Equal(t, uint(0), h.RAMSize)
	assert.True(t, h.Valid())
	assert.Equal(t, "CPU_INSTRS | Type: 0x01 | ROM Size: 64kB | RAM Size: 0kB", h.String())
}

func TestParseHeader_Checksum(t *testing.T) {
	b := rom("TEST", 0x00, 0x00, 0x02)
	b[0x014D]++

	h, ok := ParseHeader(b)
	assert.True(t, ok)
	assert.False(t, h.Valid())
	assert.False(t, h.CartridgeType.Banked())
	assert.Equal(t, uint(8*1024), h.RAMSize)
}

func TestParseHeader_Short(t *testing.T) {
	_, ok := ParseHeader([]byte{0x06, 0x60})
	assert.False(t, ok)
}
