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

package rtc

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/soft323x/hardware/rtc/bcd"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
)

// Action is a bitset of post-conditions returned by Write(). The external
// driver must act on every set bit.
type Action uint8

// List of valid Action bits.
const (
	// the free-running second timer must be restarted so that the next tick
	// arrives one full second after the write
	ActionResetTimer Action = 0x01 << iota

	// the host has requested a temperature conversion through the CONV bit
	ActionConvertTemperature
)

// Has returns true if all the bits of the argument are set in the action.
func (a Action) Has(b Action) bool {
	return a&b == b
}

func (a Action) String() string {
	s := []string{}
	if a.Has(ActionResetTimer) {
		s = append(s, "reset timer")
	}
	if a.Has(ActionConvertTemperature) {
		s = append(s, "convert temperature")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}

// Read returns the byte stored at the given address. Addresses beyond the
// register bank read as zero. No side effects.
func (r *RTC) Read(addr uint8) uint8 {
	if int(addr) >= len(r.bank) {
		return 0
	}
	return r.bank[addr]
}

// NextAddr advances the bus cursor to the next register address. The cursor
// wraps modulo the full 256 byte address space, not the bank size. On the
// wrap to address zero a fresh Update() is performed: a sequential read
// that runs off the end of the address space starts again at the seconds
// register and must observe a coherent snapshot.
func (r *RTC) NextAddr(addr uint8) uint8 {
	addr++
	if addr == 0 {
		r.Update()
	}
	return addr
}

// Write the given value to the given address, applying the per-register
// masking, clamping and side effects. Addresses beyond the register bank
// ignore the write. The returned Action bitset tells the external driver
// what it must do next; it is zero for most writes.
func (r *RTC) Write(addr uint8, value uint8) Action {
	if int(addr) >= len(r.bank) {
		return 0
	}

	var action Action

	switch addr {
	case registers.Seconds:
		r.bank[addr] = bcd.Clamp(value&registers.MaskSeconds, 0x00, 0x59)

		// setting the seconds restarts the countdown to the next second.
		// pending ticks are discarded along with it
		atomic.StoreUint32(&r.ticks, 0)
		action |= ActionResetTimer

	case registers.Minutes:
		r.bank[addr] = bcd.Clamp(value&registers.MaskMinutes, 0x00, 0x59)

	case registers.Hours:
		r.bank[addr] = clampHours(value)

	case registers.Day:
		r.bank[addr] = bcd.Clamp(value&registers.MaskDay, 0x01, 0x07)

	case registers.Date:
		// the clamp against the actual length of the current month happens
		// on the next Update()
		r.bank[addr] = bcd.Clamp(value&registers.MaskDate, 0x01, 0x31)
		r.dateWritten = true

	case registers.Month:
		// the century bits are host writable and preserved from the
		// incoming value
		r.bank[addr] = (value & (registers.BitMonthCentury0 | registers.BitMonthCentury1 | registers.BitMonthCentury2)) |
			bcd.Clamp(value&registers.MaskMonth, 0x01, 0x12)
		r.dateWritten = true

	case registers.Year:
		r.bank[addr] = bcd.Clamp(value, 0x00, 0x99)
		r.dateWritten = true

	case registers.Alarm1Seconds:
		// like the seconds register but without the timer reset
		r.bank[addr] = (value & registers.BitAlarmMode) | bcd.Clamp(value&registers.MaskSeconds, 0x00, 0x59)

	case registers.Alarm1Minutes, registers.Alarm2Minutes:
		r.bank[addr] = (value & registers.BitAlarmMode) | bcd.Clamp(value&registers.MaskMinutes, 0x00, 0x59)

	case registers.Alarm1Hours, registers.Alarm2Hours:
		r.bank[addr] = (value & registers.BitAlarmMode) | clampHours(value)

	case registers.Alarm1DayOrDate, registers.Alarm2DayOrDate:
		if value&registers.BitAlarmIsDay == registers.BitAlarmIsDay {
			r.bank[addr] = (value & (registers.BitAlarmMode | registers.BitAlarmIsDay)) |
				bcd.Clamp(value&registers.MaskDay, 0x01, 0x07)
		} else {
			r.bank[addr] = (value & registers.BitAlarmMode) | bcd.Clamp(value&registers.MaskDate, 0x01, 0x31)
		}

	case registers.Ctrl1:
		// an existing conversion request survives the write, whatever the
		// incoming CONV bit says. see the "open questions" section of the
		// DESIGN document
		r.bank[addr] = value | (r.bank[addr] & registers.BitCtrl1CONV)
		if value&registers.BitCtrl1CONV == registers.BitCtrl1CONV {
			action |= ActionConvertTemperature
		}

	case registers.Ctrl2:
		// the OSF, A1F and A2F flags can be cleared but never set from the
		// bus. the remaining bits, BSY included, are stored as written
		sticky := registers.BitCtrl2OSF | registers.BitCtrl2A1F | registers.BitCtrl2A2F
		r.bank[addr] = (value &^ sticky) | (r.bank[addr] & value & sticky)

	case registers.AgingOffset:
		// stored but without effect. this emulation does not model the
		// oscillator frequency
		r.bank[addr] = value

	case registers.TempMSB, registers.TempLSB:
		// read-only from the bus

	case registers.Ctrl3:
		r.bank[addr] = value & registers.BitCtrl3BBTD

	default:
		// user SRAM. plain storage with no semantics
		r.bank[addr] = value
	}

	return action
}

// clampHours applies the write semantics shared by the hours register and
// the two alarm hours registers. In 12-hour mode the 12-hour and PM flags
// are preserved and the counter is clamped to 1 to 12; in 24-hour mode both
// flags are cleared and the counter is clamped to 0 to 23.
func clampHours(value uint8) uint8 {
	if value&registers.BitHour12Hour == registers.BitHour12Hour {
		return (value & (registers.BitHour12Hour | registers.BitHourPM)) |
			bcd.Clamp(value&registers.MaskHours12Hour, 0x01, 0x12)
	}
	return bcd.Clamp(value&registers.MaskHours24Hour, 0x00, 0x23)
}
