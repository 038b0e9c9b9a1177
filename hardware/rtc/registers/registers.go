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

package registers

// Register addresses as presented on the I2C bus. The layout follows the
// DS3232 datasheet with the user SRAM beginning immediately after the last
// control register.
const (
	Seconds uint8 = 0x00
	Minutes uint8 = 0x01
	Hours   uint8 = 0x02
	Day     uint8 = 0x03
	Date    uint8 = 0x04
	Month   uint8 = 0x05
	Year    uint8 = 0x06

	Alarm1Seconds   uint8 = 0x07
	Alarm1Minutes   uint8 = 0x08
	Alarm1Hours     uint8 = 0x09
	Alarm1DayOrDate uint8 = 0x0a

	Alarm2Minutes   uint8 = 0x0b
	Alarm2Hours     uint8 = 0x0c
	Alarm2DayOrDate uint8 = 0x0d

	Ctrl1 uint8 = 0x0e
	Ctrl2 uint8 = 0x0f

	AgingOffset uint8 = 0x10
	TempMSB     uint8 = 0x11
	TempLSB     uint8 = 0x12

	Ctrl3 uint8 = 0x13

	// SRAM is the address of the first byte of user SRAM. The number of
	// valid SRAM addresses depends on the device variant.
	SRAM uint8 = 0x14
)

// CanonicalSymbols lists the fixed registers along with the canonical names
// used by the DS3232 datasheet. Used by the debugger for register lookups,
// never by the emulation itself.
var CanonicalSymbols = map[uint8]string{
	0x00: "SECONDS",
	0x01: "MINUTES",
	0x02: "HOURS",
	0x03: "DAY",
	0x04: "DATE",
	0x05: "MONTH",
	0x06: "YEAR",
	0x07: "A1SEC",
	0x08: "A1MIN",
	0x09: "A1HR",
	0x0a: "A1DYDT",
	0x0b: "A2MIN",
	0x0c: "A2HR",
	0x0d: "A2DYDT",
	0x0e: "CONTROL",
	0x0f: "STATUS",
	0x10: "AGING",
	0x11: "TEMPMSB",
	0x12: "TEMPLSB",
	0x13: "CONTROL3",
}

// Field masks for the BCD time registers. Bits outside the mask either carry
// sideband flags (12-hour mode, century) or are unused.
const (
	MaskSeconds     uint8 = 0x7f
	MaskMinutes     uint8 = 0x7f
	MaskHours12Hour uint8 = 0x1f
	MaskHours24Hour uint8 = 0x3f
	MaskDay         uint8 = 0x07
	MaskDate        uint8 = 0x3f
	MaskMonth       uint8 = 0x1f
	MaskYear        uint8 = 0xff
)

// Sideband bits in the hours register.
const (
	BitHour12Hour uint8 = 0x40
	BitHourPM     uint8 = 0x20
)

// The three century bits in the month register. Unlike the real DS3232, which
// has a single century flag, the century is a three bit binary counter with
// Century0 as the least significant bit. The encoded value is the number of
// centuries since 1900: Century0 adds 100 years, Century1 adds 200 years and
// Century2 adds 400 years.
const (
	BitMonthCentury0 uint8 = 0x80
	BitMonthCentury1 uint8 = 0x40
	BitMonthCentury2 uint8 = 0x20

	// BitMonthCentury is the century bit as understood by the datasheet and
	// by host drivers. Alias of BitMonthCentury0.
	BitMonthCentury uint8 = 0x80
)

// Alarm register bits. BitAlarmMode is the per-field "don't care" bit;
// BitAlarmIsDay selects day-of-week comparison in the day/date registers.
const (
	BitAlarmMode  uint8 = 0x80
	BitAlarmIsDay uint8 = 0x40
)

// Control register 1 bits.
const (
	BitCtrl1EOSC  uint8 = 0x80
	BitCtrl1BBSQW uint8 = 0x40
	BitCtrl1CONV  uint8 = 0x20
	BitCtrl1RS2   uint8 = 0x10
	BitCtrl1RS1   uint8 = 0x08
	BitCtrl1INTCN uint8 = 0x04
	BitCtrl1A2IE  uint8 = 0x02
	BitCtrl1A1IE  uint8 = 0x01
)

// Control register 2 (status) bits.
const (
	BitCtrl2OSF     uint8 = 0x80
	BitCtrl2BB32KHZ uint8 = 0x40
	BitCtrl2CRATE1  uint8 = 0x20
	BitCtrl2CRATE0  uint8 = 0x10
	BitCtrl2EN32KHZ uint8 = 0x08
	BitCtrl2BSY     uint8 = 0x04
	BitCtrl2A2F     uint8 = 0x02
	BitCtrl2A1F     uint8 = 0x01
)

// Control register 3 bits. Only the battery-backed temperature conversion
// bit is writable; the remainder of the register reads as zero.
const (
	BitCtrl3BBTD uint8 = 0x01
)
