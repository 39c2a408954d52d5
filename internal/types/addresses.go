package types

// Memory regions of the 64kB address space. Each region is
// described by its first and last address (inclusive).
const (
	// ROMStart is the first address of the program ROM. The ROM is
	// mapped without any bank switching, so only the first 32kB of
	// a program are addressable.
	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0x7FFF
	// VRAMStart is the first address of video RAM, owned by the LCD.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	// ERAMStart is the first address of cartridge RAM. Like the ROM,
	// it is mapped as a single unbanked 8kB block.
	ERAMStart uint16 = 0xA000
	ERAMEnd   uint16 = 0xBFFF
	// WRAM1Start is the first address of the first work RAM bank.
	WRAM1Start uint16 = 0xC000
	WRAM1End   uint16 = 0xCFFF
	// WRAM2Start is the first address of the second work RAM bank.
	WRAM2Start uint16 = 0xD000
	WRAM2End   uint16 = 0xDFFF
	// OAMStart is the first address of the sprite attribute table.
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	// HRAMStart is the first address of high RAM (zero page).
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. The P1
	// hardware register is used to select the input keys to
	// be read by the CPU, and to read the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte being transferred over
	// the serial port. Test ROMs print their results here.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. The DIV
	// hardware register is incremented at a rate of 16384Hz. Writing
	// any value to it resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select
	//           00: 4096 Hz
	//           01: 262144 Hz
	//           10: 65536 Hz
	//           11: 16384 Hz
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// NR10 is the first sound register. The sound unit is only
	// modelled as register storage, from NR10 up to NR52.
	NR10 HardwareAddress = 0xFF10
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26
	// WaveRAMStart is the first address of the wave pattern RAM.
	WaveRAMStart HardwareAddress = 0xFF30
	WaveRAMEnd   HardwareAddress = 0xFF3F
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to control the LCD.
	//
	// The register is set as follows:
	//
	//  Bit 7: LCD Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the STAT hardware register. The STAT
	// hardware register contains the status of the LCD, and is used
	// to report the mode the LCD is in, and to request LCD interrupts.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//  Bit 5: mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//  Bit 4: mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 3: mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0: mode Flag       (mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the address of the SCY hardware register, the vertical
	// scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the horizontal
	// scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. The LY
	// hardware register is the current scanline. The range of
	// values for LY is 0-153, and it is read only.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the LYC hardware register. This register
	// is compared to LY. When they are the same, the coincidence flag
	// in the STAT hardware register is set, and a STAT interrupt is
	// requested if the coincidence interrupt flag is set.
	LYC HardwareAddress = 0xFF45
	// DMA is the address of the DMA hardware register. Writing a value
	// to DMA transfers 160 bytes of data from value<<8 to OAM.
	DMA HardwareAddress = 0xFF46
	// BGP is the address of the background palette register.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of sprite palette 0.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of sprite palette 1.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the window Y position register.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the window X position register.
	WX HardwareAddress = 0xFF4B
	// VBK is the address of the VBK hardware register. The VBK
	// hardware register selects the current VRAM bank. Only bit 0
	// is stored, banking itself is not modelled.
	VBK HardwareAddress = 0xFF4F
	// BCPS is the address of the BCPS hardware register. The BCPS
	// hardware register is used to set the background palette index
	// and auto increment flag.
	//
	//  Bit 7   - Auto Increment  (0=Off, 1=On)
	//  Bit 5-0 - Background Palette Index  ($00-$3F)
	BCPS HardwareAddress = 0xFF68
	// BCPD is the address of the BCPD hardware register. The BCPD
	// hardware register is used to read and write the background
	// palette data selected by BCPS.
	BCPD HardwareAddress = 0xFF69
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to Enable interrupts. Writing a 1
	// to a bit in IE Enables the corresponding interrupt, and writing
	// a 0 disables the interrupt.
	IE HardwareAddress = 0xFFFF
)
