package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func TestState(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	assert.Equal(t, uint8(0xFF), s.Read(types.P1))

	s.Press(ButtonStart)
	s.Press(ButtonUp)
	assert.Equal(t, interrupts.Joypad.Mask, irq.Flag)

	s.Write(types.P1, 0x10) // select buttons
	assert.Equal(t, uint8(0xD7), s.Read(types.P1))

	s.Write(types.P1, 0x20) // select directions
	assert.Equal(t, uint8(0xEB), s.Read(types.P1))

	s.Release(ButtonUp)
	assert.Equal(t, uint8(0xEF), s.Read(types.P1))
}

func TestState_HeldButton(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)
	s.Press(ButtonA)
	irq.Flag = 0
	s.Press(ButtonA)
	assert.Zero(t, irq.Flag)
}
