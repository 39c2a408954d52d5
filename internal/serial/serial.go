// Package serial implements the link port registers. Transfers are
// only driven by the internal clock; an externally clocked transfer
// waits forever, as no peer ever drives the clock.
package serial

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// cyclesPerBit is the number of cycles taken to shift a single
	// bit (8192Hz).
	cyclesPerBit = 512
)

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, it has a mix of the incoming data and the outgoing data.
// each bit, the leftmost bit of data is sent to the attached device, and
// shifted out of data, and the incoming bit is shifted into data.
//
// example:
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Bit 1:   data = o6 o5 o4 o3 o2 o1 o0 i0
//	...
//	Bit 8:   data = i0 i1 i2 i3 i4 i5 i6 i7
//
// Where o0-o7 are the outgoing bits, and i0-i7 are the incoming bits.
type Controller struct {
	data            uint8 // types.SB
	count           uint8 // the number of bits that have been transferred.
	clock           uint32
	InternalClock   bool // if true, this controller is the master.
	TransferRequest bool // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.

	irq *interrupts.Service
}

// NewController creates a new Controller, which requests serial
// interrupts through irq.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. This is the same as if the device is not
// plugged in. If you want to attach a device, use the Controller.Attach method.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Synchronize shifts one bit for every cyclesPerBit cycles of an
// internally clocked transfer.
func (c *Controller) Synchronize(cycles uint32) {
	if !c.InternalClock || !c.TransferRequest {
		return
	}
	c.clock += cycles
	for c.clock >= cyclesPerBit && c.TransferRequest {
		c.clock -= cyclesPerBit
		c.shift()
	}
}

func (c *Controller) shift() {
	bit := c.AttachedDevice.Send()
	c.AttachedDevice.Receive(c.data&types.Bit7 != 0)

	c.data <<= 1
	if bit {
		c.data |= 1
	}

	if c.count++; c.count == 8 {
		c.count = 0
		c.clock = 0
		c.TransferRequest = false
		c.irq.RequestSerial()
	}
}

// Read returns the value of types.SB or types.SC.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		v := uint8(0x7E) // bits 1-6 are always set
		if c.TransferRequest {
			v |= types.Bit7
		}
		if c.InternalClock {
			v |= types.Bit0
		}
		return v
	}
	panic(fmt.Sprintf("serial: illegal read from address 0x%04X", address))
}

// Write sets the value of types.SB or types.SC. Setting bit 7 of
// types.SC starts a transfer.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.InternalClock = value&types.Bit0 != 0
		c.TransferRequest = value&types.Bit7 != 0
		c.count = 0
		c.clock = 0
	default:
		panic(fmt.Sprintf("serial: illegal write to address 0x%04X", address))
	}
}
