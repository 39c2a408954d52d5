// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. It is used to
	// hold the state of the buttons, the lower 4 bits are
	// used for the action buttons, and the upper 4 bits are
	// used for the direction buttons. A 1 in a bit indicates
	// that the button is pressed.
	State Button

	selected uint8 // bits 4-5 of types.P1
	irq      *interrupts.Service
}

// New returns a new joypad state, which requests joypad
// interrupts through irq.
func New(irq *interrupts.Service) *State {
	return &State{
		selected: 0x30,
		irq:      irq,
	}
}

// Press presses a button.
func (s *State) Press(button Button) {
	if !bits.Test(s.State, button) {
		s.State = bits.Set(s.State, button)
		s.irq.RequestJoypad()
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State = bits.Reset(s.State, button)
}

// Read returns the value of types.P1.
func (s *State) Read(address uint16) uint8 {
	if address != types.P1 {
		panic(fmt.Sprintf("joypad: illegal read from address 0x%04X", address))
	}
	d := uint8(0xC0) | s.selected
	if s.selected&types.Bit4 == 0 {
		d |= s.State >> 4 & 0xF
	}
	if s.selected&types.Bit5 == 0 {
		d |= s.State & 0xF
	}
	return d ^ 0xF
}

// Write selects the button group to be read.
func (s *State) Write(address uint16, value uint8) {
	if address != types.P1 {
		panic(fmt.Sprintf("joypad: illegal write to address 0x%04X", address))
	}
	s.selected = value & 0x30
}
