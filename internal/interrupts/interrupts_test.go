package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgcore/internal/types"
)

func TestService_Priority(t *testing.T) {
	s := NewService()
	s.Enable = 0x1F
	s.RequestTimer()
	s.RequestVBlank()

	i, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, VBlank, i)

	s.Acknowledge(i)
	i, ok = s.Next()
	assert.True(t, ok)
	assert.Equal(t, Timer, i)

	s.Acknowledge(i)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestService_Disabled(t *testing.T) {
	s := NewService()
	s.Enable = Serial.Mask
	s.RequestJoypad()
	s.RequestLCDStat()

	_, ok := s.Next()
	assert.False(t, ok)
	assert.Zero(t, s.Pending())

	s.RequestSerial()
	i, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x58), i.Vector)
}

func TestService_Registers(t *testing.T) {
	s := NewService()
	s.Write(types.IF, 0xFF)
	assert.Equal(t, uint8(0x1F), s.Flag)
	assert.Equal(t, uint8(0xFF), s.Read(types.IF))

	s.Write(types.IF, 0x00)
	assert.Equal(t, uint8(0xE0), s.Read(types.IF))

	s.Write(types.IE, 0xAB)
	assert.Equal(t, uint8(0xAB), s.Read(types.IE))
}

func TestService_RequestIdempotent(t *testing.T) {
	s := NewService()
	s.RequestTimer()
	s.RequestTimer()
	assert.Equal(t, Timer.Mask, s.Flag)
}
