package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

type loopback struct {
	received []bool
}

func (l *loopback) Receive(b bool) { l.received = append(l.received, b) }
func (l *loopback) Send() bool { return false }

func TestController_Transfer(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)

	c.Write(types.SB, 'P')
	c.Write(types.SC, 0x81)
	assert.Equal(t, uint8(0xFF), c.Read(types.SC))

	c.Synchronize(8*cyclesPerBit - 1)
	assert.Zero(t, irq.Flag)

	c.Synchronize(1)
	assert.Equal(t, interrupts.Serial.Mask, irq.Flag)
	assert.Equal(t, uint8(0xFF), c.Read(types.SB))
	assert.Equal(t, uint8(0x7F), c.Read(types.SC))
}

func TestController_Device(t *testing.T) {
	c := NewController(interrupts.NewService())
	d := &loopback{}
	c.Attach(d)

	c.Write(types.SB, 0b1010_0000)
	c.Write(types.SC, 0x81)
	c.Synchronize(8 * cyclesPerBit)

	assert.Equal(t, []bool{true, false, true, false, false, false, false, false}, d.received)
	assert.Zero(t, c.Read(types.SB))
}

func TestController_ExternalClock(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	c.Write(types.SC, 0x80)
	c.Synchronize(1 << 20)
	assert.Zero(t, irq.Flag)
	assert.Equal(t, uint8(0xFE), c.Read(types.SC))
}
