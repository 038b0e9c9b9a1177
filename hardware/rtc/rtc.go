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
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/soft323x/hardware/rtc/bcd"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
)

// SRAM sizes for the two supported device variants. Any other size between 0
// and 236 is accepted by NewRTC but does not correspond to a real device.
const (
	SRAMSizeDS3231 = 0
	SRAMSizeDS3232 = 236
)

// maximum size of the visible register bank. addresses at and beyond the end
// of the bank read as zero and ignore writes.
const maxBankSize = 256

// RTC is the register file state machine of the emulated DS323x. It is the
// single point of truth for everything the host can observe over the I2C
// bus.
//
// Concurrency contract: Tick() is the only function that may be called from
// a different goroutine (it models the one second timer interrupt). All
// other functions must be called from the same goroutine, at the commit
// points described in the Update() documentation.
type RTC struct {
	// the register bank as presented on the bus. fixed layout, see the
	// registers package. the slice is allocated once at construction and
	// never resized
	bank []uint8

	// number of seconds that have passed since the last call to Update().
	// incremented by Tick() and drained atomically by Update(). only the
	// low eight bits are meaningful, mirroring the byte-wide accumulator of
	// the reference implementation
	ticks uint32

	// the date, month or year register has been written since the last
	// Update(). the date is canonicalised against the month/year on the
	// next Update()
	dateWritten bool
}

// NewRTC is the preferred method of initialisation of the RTC type. The
// sramSize argument selects the device variant: SRAMSizeDS3231 or
// SRAMSizeDS3232. Sizes that would extend the bank past the 256 byte
// address space are truncated.
func NewRTC(sramSize int) *RTC {
	if sramSize < 0 {
		sramSize = 0
	}
	if sramSize > maxBankSize-int(registers.SRAM) {
		sramSize = maxBankSize - int(registers.SRAM)
	}

	r := &RTC{
		bank: make([]uint8, int(registers.SRAM)+sramSize),
	}
	r.Reset()

	return r
}

// BankSize returns the number of addressable bytes in the register bank,
// including the user SRAM.
func (r *RTC) BankSize() int {
	return len(r.bank)
}

// Reset the RTC to its power-on state: Tuesday 2019-01-01 00:00:00 in
// 24-hour mode, alarms cleared, OSF raised and the temperature registers at
// their "not measured" sentinel. The SRAM content is not touched.
//
// The caller should also restart the second timer so that the first tick
// arrives a full second after the reset.
func (r *RTC) Reset() {
	r.bank[registers.Seconds] = bcd.Encode(0)
	r.bank[registers.Minutes] = bcd.Encode(0)
	r.bank[registers.Hours] = bcd.Encode(0)
	r.bank[registers.Day] = bcd.Encode(2)
	r.bank[registers.Date] = bcd.Encode(1)
	r.bank[registers.Month] = bcd.Encode(1) | registers.BitMonthCentury
	r.bank[registers.Year] = bcd.Encode(19)

	r.bank[registers.Alarm1Seconds] = bcd.Encode(0)
	r.bank[registers.Alarm1Minutes] = bcd.Encode(0)
	r.bank[registers.Alarm1Hours] = bcd.Encode(0)
	r.bank[registers.Alarm1DayOrDate] = bcd.Encode(1)

	r.bank[registers.Alarm2Minutes] = bcd.Encode(0)
	r.bank[registers.Alarm2Hours] = bcd.Encode(0)
	r.bank[registers.Alarm2DayOrDate] = bcd.Encode(1)

	r.bank[registers.Ctrl1] = registers.BitCtrl1RS2 | registers.BitCtrl1RS1 | registers.BitCtrl1INTCN
	r.bank[registers.Ctrl2] = registers.BitCtrl2OSF

	r.bank[registers.AgingOffset] = 0

	// the temperature registers power up at a sentinel value meaning "no
	// measurement has been taken". 0xffc0 is -0.25C which no sane
	// conversion will ever report for a room temperature crystal
	r.bank[registers.TempMSB] = 0xff
	r.bank[registers.TempLSB] = 0xc0

	r.bank[registers.Ctrl3] = 0

	atomic.StoreUint32(&r.ticks, 0)
	r.dateWritten = false
}

// AssertOSF raises the oscillator stop flag without any other side effect.
// Called by the host program after a cold boot or when it has detected a
// loss of the timebase. The flag is sticky; the bus master clears it by
// writing a zero to the OSF bit of the status register.
func (r *RTC) AssertOSF() {
	r.bank[registers.Ctrl2] |= registers.BitCtrl2OSF
}

// SetTemperature stores a raw temperature measurement in the temperature
// registers. This is the only path that can alter those registers; bus
// writes to them are ignored. The arguments are the raw register values as
// defined by the datasheet: msb is the signed integer part, the top two
// bits of lsb are the quarter-degree fraction.
func (r *RTC) SetTemperature(msb uint8, lsb uint8) {
	r.bank[registers.TempMSB] = msb
	r.bank[registers.TempLSB] = lsb & 0xc0
}

// Seconds returns the current time's seconds component. Range 0 to 59.
func (r *RTC) Seconds() uint8 {
	return bcd.Decode(r.bank[registers.Seconds] & registers.MaskSeconds)
}

// Minutes returns the current time's minutes component. Range 0 to 59.
func (r *RTC) Minutes() uint8 {
	return bcd.Decode(r.bank[registers.Minutes] & registers.MaskMinutes)
}

// Hours returns the current time's hours component normalised to the
// 24-hour clock, regardless of whether the hours register is in 12-hour or
// 24-hour mode. Range 0 to 23.
func (r *RTC) Hours() uint8 {
	h := r.bank[registers.Hours]
	if h&registers.BitHour12Hour == registers.BitHour12Hour {
		v := bcd.Decode(h & registers.MaskHours12Hour)
		if h&registers.BitHourPM == registers.BitHourPM {
			if v == 12 {
				return v
			}
			return v + 12
		}
		if v == 12 {
			return 0
		}
		return v
	}
	return bcd.Decode(h & registers.MaskHours24Hour)
}

// Day returns the day of the week as a value between 1 and 7. The meaning
// of the field is up to the host; the reset value follows the convention
// that Monday is 1 (2019-01-01 was a Tuesday).
func (r *RTC) Day() uint8 {
	return bcd.Decode(r.bank[registers.Day] & registers.MaskDay)
}

// Date returns the day of the month as a value between 1 and 31.
func (r *RTC) Date() uint8 {
	return bcd.Decode(r.bank[registers.Date] & registers.MaskDate)
}

// Month returns the current month as a value between 1 and 12.
func (r *RTC) Month() uint8 {
	return bcd.Decode(r.bank[registers.Month] & registers.MaskMonth)
}

// Year returns the absolute year: 1900 plus the two digit year register
// plus the century encoded in the month register's century bits.
func (r *RTC) Year() uint16 {
	m := r.bank[registers.Month]
	year := 1900 + uint16(bcd.Decode(r.bank[registers.Year]&registers.MaskYear))
	if m&registers.BitMonthCentury0 == registers.BitMonthCentury0 {
		year += 100
	}
	if m&registers.BitMonthCentury1 == registers.BitMonthCentury1 {
		year += 200
	}
	if m&registers.BitMonthCentury2 == registers.BitMonthCentury2 {
		year += 400
	}
	return year
}

func (r *RTC) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d (day %d)",
		r.Year(), r.Month(), r.Date(),
		r.Hours(), r.Minutes(), r.Seconds(),
		r.Day(),
	)
}
