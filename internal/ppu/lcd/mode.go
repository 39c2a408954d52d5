package lcd

// Mode represents a mode of the LCD, as reported in bits 0-1 of
// types.STAT.
type Mode uint8

const (
	// HorizontalBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HorizontalBlank Mode = iota
	// VerticalBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VerticalBlank
	// SearchData is the OAM search mode. The CPU can access the display RAM but not OAM.
	SearchData
	// Transfer is the pixel transfer mode. The CPU can access neither the display RAM nor OAM.
	Transfer
)

func (m Mode) String() string {
	return [...]string{"HorizontalBlank", "VerticalBlank", "SearchData", "Transfer"}[m&3]
}
