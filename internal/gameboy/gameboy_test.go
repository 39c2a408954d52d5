package gameboy

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/debug"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

// maxTestCycles bounds a test ROM to two minutes of emulated time.
const maxTestCycles = ClockSpeed * 120

// program returns a 32kB ROM with code placed at 0x0100.
func program(code ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], code)
	return rom
}

// printSerial assembles the code to print s over the serial port.
func printSerial(s string) []uint8 {
	var code []uint8
	for _, b := range []byte(s) {
		code = append(code,
			0x3E, b, // LD A, b
			0xE0, 0x01, // LDH (SB), A
			0x3E, 0x81, // LD A, 0x81
			0xE0, 0x02, // LDH (SC), A
		)
	}
	return append(code, 0x18, 0xFE) // JR -2
}

func TestGameBoy_SkipBoot(t *testing.T) {
	g := NewGameBoy(program(), SkipBoot())

	assert.Equal(t, uint16(0x01B0), g.CPU.AF())
	assert.Equal(t, uint16(0x0013), g.CPU.BC())
	assert.Equal(t, uint16(0x00D8), g.CPU.DE())
	assert.Equal(t, uint16(0x014D), g.CPU.HL())
	assert.Equal(t, uint16(0xFFFE), g.CPU.SP)
	assert.Equal(t, uint16(0x0100), g.CPU.PC)
	assert.Equal(t, uint8(0x91), g.MMU.Read(types.LCDC))
}

func TestGameBoy_PowerOn(t *testing.T) {
	g := NewGameBoy([]byte{0x06, 0x60})

	assert.Equal(t, uint32(8), g.Step())
	assert.Equal(t, uint8(0x60), g.CPU.B())
	assert.Equal(t, uint64(0xA8), g.CPU.Cycles)
}

func TestGameBoy_SerialDebugger(t *testing.T) {
	monitor := debug.NewSerialMonitor()
	g := NewGameBoy(program(printSerial("Passed")...), SkipBoot(), SerialDebugger(monitor))

	require.NoError(t, g.RunUntil(monitor.Done))
	assert.True(t, monitor.Passed())
	assert.Equal(t, "Passed", monitor.Output())
}

func TestGameBoy_Unimplemented(t *testing.T) {
	g := NewGameBoy(program(0x00, 0xDD), SkipBoot())

	err := g.RunFor(CyclesPerFrame)
	require.Error(t, err)

	var unimplemented *cpu.UnimplementedInstructionError
	require.True(t, errors.As(err, &unimplemented))
	assert.Equal(t, uint8(0xDD), unimplemented.Opcode)
	assert.Equal(t, uint16(0x0101), unimplemented.PC)
}

func TestGameBoy_Unmapped(t *testing.T) {
	g := NewGameBoy(program(0xFA, 0x00, 0xE0), SkipBoot()) // LD A, (0xE000)

	err := g.RunFor(CyclesPerFrame)
	var unmapped *mmu.UnmappedAddressError
	require.True(t, errors.As(err, &unmapped))
	assert.Equal(t, uint16(0xE000), unmapped.Address)
	assert.False(t, unmapped.Write)
}

func TestGameBoy_Frames(t *testing.T) {
	frames := make(chan ppu.Frame, 1)
	g := NewGameBoy(program(0x18, 0xFE), SkipBoot(), WithFrames(frames))

	require.NoError(t, g.Frame())
	select {
	case f := <-frames:
		assert.Equal(t, uint64(1), f.Number)
		assert.Equal(t, uint8(0x91), f.Registers[0])
	default:
		t.Fatal("expected a frame")
	}
}

func TestGameBoy_VBlankInterrupt(t *testing.T) {
	g := NewGameBoy(program(
		0x3E, 0x01, // LD A, 0x01
		0xE0, 0xFF, // LDH (IE), A
		0xFB,       // EI
		0x76,       // HALT
		0x18, 0xFD, // JR -3
	), SkipBoot())

	require.NoError(t, g.RunUntil(func() bool { return g.CPU.PC == 0x0040 }))
	assert.Equal(t, uint16(0x0106), g.MMU.Read16(g.CPU.SP))
	assert.False(t, g.CPU.IME)
}

func TestGameBoy_Run(t *testing.T) {
	g := NewGameBoy(program(0x18, 0xFE), SkipBoot())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, g.Run(ctx))
	assert.Greater(t, g.CPU.Cycles, uint64(0xA0))
}

func TestGameBoy_Hooks(t *testing.T) {
	var executed, written int
	g := NewGameBoy(program(0x3E, 0x01, 0xEA, 0x00, 0xC0, 0x18, 0xFE), SkipBoot(),
		WithExecutionHook(cpu.ExecutionHookFunc(func(*cpu.CPU, cpu.Opcode) { executed++ })),
		WithWriteHook(mmu.WriteHookFunc(func(address uint16, value uint8) {
			if address == 0xC000 {
				written++
			}
		})),
	)

	require.NoError(t, g.RunFor(64))
	assert.Greater(t, executed, 2)
	assert.Equal(t, 1, written)
	assert.Equal(t, uint8(0x01), g.MMU.Read(0xC000))
}

func romTestWalker(t *testing.T) fs.WalkDirFunc {
	return func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == ".gb" {
			t.Run(path, func(t *testing.T) {
				testRom(t, path)
			})
		}

		return nil
	}
}

func testRom(t *testing.T, romPath string) {
	b, err := utils.LoadFile(romPath)
	if err != nil {
		t.Fatal(err)
	}
	monitor := debug.NewSerialMonitor()
	g := NewGameBoy(b, SkipBoot(), SerialDebugger(monitor))

	// run until the rom reports a result over the serial port
	err = g.RunUntil(func() bool {
		return monitor.Done() || g.CPU.Cycles > maxTestCycles
	})
	if err != nil {
		t.Fatal(err)
	}
	if !monitor.Passed() {
		t.Errorf("test failed: %q", monitor.Output())
	}
}

func TestROMs(t *testing.T) {
	const dir = "testdata/roms"
	if _, err := os.Stat(dir); err != nil {
		t.Skipf("no test roms in %s", dir)
	}
	if err := filepath.WalkDir(dir, romTestWalker(t)); err != nil {
		t.Fatal(err)
	}
}
