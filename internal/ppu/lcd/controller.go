package lcd

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (types.LCDC) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress represents the Window Tile Map Display Select bit,
	// stored as the start address of the tile map.
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileDataAddress represents the BG & Window Tile Data Select bit,
	// stored as the start address of the tile data.
	TileDataAddress uint16
	// BackgroundTileMapAddress represents the BG Tile Map Display Select bit,
	// stored as the start address of the tile map.
	BackgroundTileMapAddress uint16
	// SpriteSize is 8 or 16, the height of a sprite.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit.
	BackgroundEnabled bool
}

// Write unpacks value into the controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = tileMap(bits.Test(value, 6))
	c.WindowEnabled = bits.Test(value, 5)
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	} else {
		c.TileDataAddress = 0x8800
	}
	c.BackgroundTileMapAddress = tileMap(bits.Test(value, 3))
	c.SpriteSize = 8 + bits.Val(value, 2)*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read packs the controller into its register value.
func (c *Controller) Read() uint8 {
	return bits.From(c.Enabled, types.Bit7) |
		bits.From(c.WindowTileMapAddress == 0x9C00, types.Bit6) |
		bits.From(c.WindowEnabled, types.Bit5) |
		bits.From(c.TileDataAddress == 0x8000, types.Bit4) |
		bits.From(c.BackgroundTileMapAddress == 0x9C00, types.Bit3) |
		bits.From(c.SpriteSize == 16, types.Bit2) |
		bits.From(c.SpriteEnabled, types.Bit1) |
		bits.From(c.BackgroundEnabled, types.Bit0)
}

func tileMap(high bool) uint16 {
	if high {
		return 0x9C00
	}
	return 0x9800
}
