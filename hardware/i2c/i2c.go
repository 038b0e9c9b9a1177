// This file is part of Soft323x.
//
// Soft323x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Soft323x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Soft323x.  If not, see <https://www.gnu.org/licenses/>.

package i2c

import (
	"github.com/jetsetilly/soft323x/hardware/rtc"
)

// DefaultSlaveAddress is the 7-bit bus address the DS323x family answers
// to.
const DefaultSlaveAddress = 0x68

// Device is the register file the bus exposes to the master. Implemented by
// the rtc package.
type Device interface {
	Read(addr uint8) uint8
	Write(addr uint8, value uint8) rtc.Action
	NextAddr(addr uint8) uint8
	Update() int
}

// State of the bus protocol machine. The states correspond to the slave
// receiver / slave transmitter phases of a Philips style addressed register
// transaction.
type State int

// List of valid State values.
const (
	// no transaction in progress
	StateIdle State = iota

	// addressed for write; the next received byte is the register pointer
	StateStart

	// register pointer received; received bytes are register writes and a
	// repeated start for read begins transmitting from the pointer
	StateHasAddr

	// a pointer-only write transaction has completed; the device is primed
	// for a subsequent read
	StateSendReady

	// transmitting registers to the master
	StateSendByte

	// receiving register writes from the master
	StateRecvByte
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStart:
		return "start"
	case StateHasAddr:
		return "has address"
	case StateSendReady:
		return "send ready"
	case StateSendByte:
		return "sending"
	case StateRecvByte:
		return "receiving"
	}
	panic("unknown i2c state")
}

// Bus is the slave end of the I2C connection: it reacts to the address and
// data events of the bus peripheral and drives the device's register
// protocol. It owns the register cursor and performs the commit required at
// the start of every master transaction.
//
// Bus methods are not safe for concurrent use. In the reference hardware
// they all run in the bus interrupt handler; in this emulation they must
// all be called from the same goroutine as the device's Update().
type Bus struct {
	dev Device

	// called when a register write requires the second timer to be
	// restarted. may be nil
	RestartTimer func()

	// called when the master has requested a temperature conversion
	// through the control register. may be nil
	ConvertTemperature func()

	state  State
	cursor uint8
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(dev Device) *Bus {
	return &Bus{
		dev: dev,
	}
}

// State returns the current protocol state. Used by the debugger.
func (b *Bus) State() State {
	return b.state
}

// Idle returns true if no transaction is in progress. The main loop may
// only commit ticks while the bus is idle.
func (b *Bus) Idle() bool {
	return b.state == StateIdle || b.state == StateSendReady
}

// AddressedForWrite handles the master addressing this device for writing.
// This is the start of a transaction and therefore a commit point: pending
// ticks are folded into the register bank before the master sees any of it.
func (b *Bus) AddressedForWrite() {
	b.cursor = 0
	b.dev.Update()
	b.state = StateStart
}

// AddressedForRead handles the master addressing this device for reading.
// In the usual register access pattern this arrives as a repeated start
// after a pointer-only write; the commit for the transaction happened when
// that write transaction started.
func (b *Bus) AddressedForRead() {
	switch b.state {
	case StateHasAddr, StateSendReady, StateSendByte:
		b.state = StateSendByte
	default:
		// a read with no preceding pointer write. not part of the
		// supported transaction pattern
		b.state = StateIdle
	}
}

// ReceiveByte handles a data byte from the master. The first byte of a
// write transaction sets the register pointer; every further byte is
// written through the device's register protocol with the cursor
// autoincrementing.
func (b *Bus) ReceiveByte(value uint8) {
	switch b.state {
	case StateStart:
		b.cursor = value
		b.state = StateHasAddr

	case StateHasAddr, StateRecvByte:
		action := b.dev.Write(b.cursor, value)
		if action.Has(rtc.ActionResetTimer) && b.RestartTimer != nil {
			b.RestartTimer()
		}
		if action.Has(rtc.ActionConvertTemperature) && b.ConvertTemperature != nil {
			b.ConvertTemperature()
		}
		b.cursor = b.dev.NextAddr(b.cursor)
		b.state = StateRecvByte

	default:
		b.state = StateIdle
	}
}

// TransmitByte handles the master clocking a byte out of this device.
// Returns the register at the cursor and moves the cursor on.
func (b *Bus) TransmitByte() uint8 {
	if b.state == StateSendByte {
		value := b.dev.Read(b.cursor)
		b.cursor = b.dev.NextAddr(b.cursor)
		return value
	}

	b.state = StateIdle
	return 0
}

// Stop handles the stop condition ending a transaction.
func (b *Bus) Stop() {
	if b.state == StateHasAddr {
		// the transaction only set the register pointer. the device stays
		// primed for the read that usually follows
		b.state = StateSendReady
		return
	}
	b.state = StateIdle
}

// BusError handles an error condition reported by the bus peripheral. The
// protocol machine resets; whatever bytes were written before the error
// remain written (writes are byte-atomic).
func (b *Bus) BusError() {
	b.cursor = 0
	b.state = StateIdle
}
