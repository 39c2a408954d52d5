// Package cartridge parses the header of a program. Bank switching is
// not modelled; the header is only used to describe the program and
// to warn about hardware it expects but will not find.
package cartridge

import (
	"fmt"
	"strings"
)

// HeaderStart and HeaderEnd bound the header in the address space.
const (
	HeaderStart = 0x0100
	HeaderEnd   = 0x0150
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

// Type is the memory controller the cartridge carries.
type Type uint8

const (
	ROM        Type = 0x00
	MBC1       Type = 0x01
	ROMRAM     Type = 0x08
	ROMRAMBATT Type = 0x09
)

// Banked reports whether the cartridge needs a memory bank controller.
func (t Type) Banked() bool {
	return t != ROM && t != ROMRAM && t != ROMRAMBATT
}

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0147 - CartridgeType of the game.
	CartridgeType Type
	// 0x0148 - ROMSize, calculated by 32kB x (1 << n)
	ROMSize uint
	// 0x0149 - RAMSize
	RAMSize uint

	// 0x014D - HeaderChecksum over 0x0134-0x014C
	HeaderChecksum uint8

	checksum uint8
}

// ParseHeader parses the header of program. It reports false when the
// program is too short to hold one.
func ParseHeader(program []byte) (Header, bool) {
	if len(program) < HeaderEnd {
		return Header{}, false
	}
	header := program[HeaderStart:HeaderEnd]

	h := Header{
		Title:          strings.TrimRight(string(header[0x34:0x44]), "\x00"),
		CartridgeType:  Type(header[0x47]),
		ROMSize:        (32 * 1024) * (1 << (header[0x48] & 0x0F)),
		RAMSize:        ramMAP[header[0x49]],
		HeaderChecksum: header[0x4D],
	}

	for _, b := range header[0x34:0x4D] {
		h.checksum = h.checksum - b - 1
	}

	return h, true
}

// Valid reports whether the header checksum matches.
func (h Header) Valid() bool {
	return h.checksum == h.HeaderChecksum
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Type: 0x%02X | ROM Size: %dkB | RAM Size: %dkB", h.Title, uint8(h.CartridgeType), h.ROMSize/1024, h.RAMSize/1024)
}
