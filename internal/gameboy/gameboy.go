// Package gameboy provides an emulation of a Nintendo Game Boy. It
// wires the CPU to the memory bus and every device, and drives the
// emulation in steps, frames or bounded runs.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/cpu/alu"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = lcd.FrameCycles // 70224
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger
}

// NewGameBoy returns a new GameBoy running program, with the options
// applied in order.
func NewGameBoy(program []byte, opts ...Opt) *GameBoy {
	memBus := mmu.NewMMU(program)
	g := &GameBoy{
		CPU:    cpu.NewCPU(memBus, memBus.IRQ, memBus),
		MMU:    memBus,
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}
	g.MMU.Log = g.Logger

	g.describe(program)
	return g
}

// describe logs the cartridge header of program, and warns about
// hardware it expects that is not emulated.
func (g *GameBoy) describe(program []byte) {
	h, ok := cartridge.ParseHeader(program)
	if !ok {
		g.Infof("booting %d byte program at 0x%04X", len(program), g.CPU.PC)
		return
	}

	g.Infof("booting %s at 0x%04X", h, g.CPU.PC)
	if !h.Valid() {
		g.Infof("header checksum mismatch: 0x%02X", h.HeaderChecksum)
	}
	if h.CartridgeType.Banked() || len(program) > 0x8000 {
		g.Errorf("bank switching is not emulated, only the first 32kB are mapped")
	}
}

// Step runs a single CPU step and returns the number of cycles it
// took. Fatal conditions panic; use RunFor or RunUntil to have them
// returned as errors.
func (g *GameBoy) Step() uint32 {
	return g.CPU.Step()
}

// Frame runs the emulation for the duration of a single frame.
func (g *GameBoy) Frame() error {
	return g.RunFor(CyclesPerFrame)
}

// RunFor runs the emulation for at least the given number of cycles.
func (g *GameBoy) RunFor(cycles uint64) (err error) {
	defer g.recoverFatal(&err)

	for elapsed := uint64(0); elapsed < cycles; {
		elapsed += uint64(g.CPU.Step())
	}
	return nil
}

// RunUntil runs the emulation until done reports true. done is
// checked before every step.
func (g *GameBoy) RunUntil(done func() bool) (err error) {
	defer g.recoverFatal(&err)

	for !done() {
		g.CPU.Step()
	}
	return nil
}

// Run runs the emulation a frame at a time until ctx is cancelled or
// a fatal condition halts it.
func (g *GameBoy) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := g.Frame(); err != nil {
			return err
		}
	}
}

// recoverFatal turns the panic of a fatal emulation condition into an
// error. Any other panic is propagated.
func (g *GameBoy) recoverFatal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(error)
	if !ok || !isFatal(e) {
		panic(r)
	}
	g.Errorf("emulation halted at 0x%04X (%s): %v", g.CPU.PC, g.CPU.Mode, e)
	*err = fmt.Errorf("emulation halted: %w", e)
}

func isFatal(err error) bool {
	var unimplemented *cpu.UnimplementedInstructionError
	var unmapped *mmu.UnmappedAddressError
	var invalid alu.InvalidArgumentError
	return errors.As(err, &unimplemented) || errors.As(err, &unmapped) || errors.As(err, &invalid)
}
