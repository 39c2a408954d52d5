package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/debug"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug traces every instruction through the logger of the GameBoy.
// It should follow WithLogger.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.AddHook(debug.NewTracer(gb.Logger, 0))
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

func WithExecutionHook(h cpu.ExecutionHook) Opt {
	return func(gb *GameBoy) {
		gb.CPU.AddHook(h)
	}
}

func WithWriteHook(h mmu.WriteHook) Opt {
	return func(gb *GameBoy) {
		gb.MMU.AddHook(h)
	}
}

// SerialDebugger intercepts the serial output of the program, used by
// test programs to print their results.
func SerialDebugger(monitor *debug.SerialMonitor) Opt {
	return func(gb *GameBoy) {
		gb.MMU.AddHook(monitor)
	}
}

// WithFrames sends a snapshot of the LCD to frames every time it
// enters the vertical blank. Frames are dropped when nobody receives.
func WithFrames(frames chan<- ppu.Frame) Opt {
	return func(gb *GameBoy) {
		gb.MMU.Video.AttachFrames(frames)
	}
}

// SkipBoot starts the emulator at 0x100 with the registers set to the
// values upon completion of the boot ROM, and the LCD switched on.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.CPU.SetAF(0x01B0)
		gb.CPU.SetBC(0x0013)
		gb.CPU.SetDE(0x00D8)
		gb.CPU.SetHL(0x014D)
		gb.CPU.SP = 0xFFFE
		gb.CPU.PC = 0x0100

		gb.MMU.Write(types.LCDC, 0x91)
		gb.MMU.Write(types.BGP, 0xFC)
	}
}
