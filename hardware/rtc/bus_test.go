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

package rtc_test

import (
	"testing"

	"github.com/jetsetilly/soft323x/hardware/rtc"
	"github.com/jetsetilly/soft323x/hardware/rtc/bcd"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
	"github.com/jetsetilly/soft323x/test"
)

func TestWriteSeconds(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	a := r.Write(registers.Seconds, bcd.Encode(42))
	test.ExpectedSuccess(t, a.Has(rtc.ActionResetTimer))
	test.Equate(t, r.Seconds(), 42)

	a = r.Write(registers.Seconds, bcd.Encode(0))
	test.ExpectedSuccess(t, a.Has(rtc.ActionResetTimer))
	test.Equate(t, r.Seconds(), 0)

	// out of range values clamp
	a = r.Write(registers.Seconds, 0xff)
	test.ExpectedSuccess(t, a.Has(rtc.ActionResetTimer))
	test.Equate(t, r.Seconds(), 59)
}

func TestWriteSecondsDrainsTicks(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	// ticks pending at the moment of the write are discarded. the write
	// starts a fresh second
	r.Tick()
	r.Tick()
	r.Write(registers.Seconds, bcd.Encode(30))
	test.Equate(t, r.Update(), 0)
	test.Equate(t, r.Seconds(), 30)
}

func TestWriteMinutes(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	test.Equate(t, uint8(r.Write(registers.Minutes, bcd.Encode(42))), 0)
	test.Equate(t, r.Minutes(), 42)

	r.Write(registers.Minutes, 0xff)
	test.Equate(t, r.Minutes(), 59)
}

func TestWriteHours(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	// 24-hour mode
	r.Write(registers.Hours, bcd.Encode(23))
	test.Equate(t, r.Hours(), 23)

	r.Write(registers.Hours, bcd.Encode(24))
	test.Equate(t, r.Hours(), 23)

	r.Write(registers.Hours, bcd.Encode(0))
	test.Equate(t, r.Hours(), 0)

	// 12-hour mode. 12 a.m.
	r.Write(registers.Hours, bcd.Encode(12)|registers.BitHour12Hour)
	test.Equate(t, r.Hours(), 0)

	// 13 is not a 12-hour value. clamps to 12, flags untouched
	r.Write(registers.Hours, bcd.Encode(13)|registers.BitHour12Hour)
	test.Equate(t, r.Hours(), 0)

	r.Write(registers.Hours, bcd.Encode(5)|registers.BitHour12Hour)
	test.Equate(t, r.Hours(), 5)

	// afternoon
	r.Write(registers.Hours, bcd.Encode(12)|registers.BitHour12Hour|registers.BitHourPM)
	test.Equate(t, r.Hours(), 12)

	r.Write(registers.Hours, bcd.Encode(13)|registers.BitHour12Hour|registers.BitHourPM)
	test.Equate(t, r.Hours(), 12)

	r.Write(registers.Hours, bcd.Encode(5)|registers.BitHour12Hour|registers.BitHourPM)
	test.Equate(t, r.Hours(), 17)

	r.Write(registers.Hours, bcd.Encode(11)|registers.BitHour12Hour|registers.BitHourPM)
	test.Equate(t, r.Hours(), 23)

	// a 24-hour write clears the mode and PM flags
	r.Write(registers.Hours, bcd.Encode(8))
	test.Equate(t, r.Read(registers.Hours), bcd.Encode(8))
}

func TestWriteDay(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	r.Write(registers.Day, bcd.Encode(0))
	test.Equate(t, r.Day(), 1)

	r.Write(registers.Day, bcd.Encode(7))
	test.Equate(t, r.Day(), 7)

	// 8 in BCD exceeds the three bit field. the masked value clamps up
	// from zero
	r.Write(registers.Day, bcd.Encode(8))
	test.Equate(t, r.Day(), 1)
}

func TestWriteDate(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury)

	r.Write(registers.Date, bcd.Encode(0))
	test.Equate(t, r.Date(), 1)
	r.Update()
	test.Equate(t, r.Date(), 1)

	// too large for any month. clamps to 31 at once and to the February
	// limit at the commit
	r.Write(registers.Date, bcd.Encode(32))
	test.Equate(t, r.Date(), 31)
	r.Update()
	test.Equate(t, r.Date(), 28)

	r.Write(registers.Date, bcd.Encode(12))
	r.Update()
	test.Equate(t, r.Date(), 12)
}

func TestWriteMonth(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	r.Write(registers.Date, bcd.Encode(30))
	r.Update()
	test.Equate(t, r.Date(), 30)

	// the century bits are part of the written value
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury)
	test.Equate(t, r.Month(), 2)
	test.Equate(t, r.Year(), uint16(2019))

	// clearing the century bit moves the year back to the 1900s
	r.Write(registers.Month, bcd.Encode(2))
	test.Equate(t, r.Month(), 2)
	test.Equate(t, r.Year(), uint16(1919))

	r.Update()
	test.Equate(t, r.Date(), 28)

	// invalid months clamp at both ends
	r.Write(registers.Month, bcd.Encode(0)|registers.BitMonthCentury)
	test.Equate(t, r.Month(), 1)

	r.Write(registers.Month, bcd.Encode(13)|registers.BitMonthCentury)
	test.Equate(t, r.Month(), 12)
}

func TestWriteYear(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	r.Write(registers.Year, bcd.Encode(1))
	test.Equate(t, r.Year(), uint16(2001))

	r.Write(registers.Month, bcd.Encode(1))
	test.Equate(t, r.Year(), uint16(1901))

	r.Write(registers.Year, bcd.Encode(99))
	test.Equate(t, r.Year(), uint16(1999))

	// malformed BCD clamps to the largest valid value
	r.Write(registers.Year, 0xff)
	test.Equate(t, r.Year(), uint16(1999))

	// all eight century combinations are reachable through the month
	// register
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury0)
	test.Equate(t, r.Year(), uint16(2099))
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury1)
	test.Equate(t, r.Year(), uint16(2199))
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury2)
	test.Equate(t, r.Year(), uint16(2399))
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury2|registers.BitMonthCentury0)
	test.Equate(t, r.Year(), uint16(2499))
	r.Write(registers.Month, bcd.Encode(2)|registers.BitMonthCentury2|registers.BitMonthCentury1|registers.BitMonthCentury0)
	test.Equate(t, r.Year(), uint16(2699))
}

func TestWriteAlarmRegisters(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	// the alarm mode bit survives the clamp of the low bits
	r.Write(registers.Alarm1Seconds, registers.BitAlarmMode|bcd.Encode(42))
	test.Equate(t, r.Read(registers.Alarm1Seconds), registers.BitAlarmMode|bcd.Encode(42))

	r.Write(registers.Alarm1Seconds, registers.BitAlarmMode|0x7f)
	test.Equate(t, r.Read(registers.Alarm1Seconds), registers.BitAlarmMode|0x59)

	// unlike the seconds register, no timer reset
	test.Equate(t, uint8(r.Write(registers.Alarm1Seconds, bcd.Encode(10))), 0)

	r.Write(registers.Alarm2Minutes, registers.BitAlarmMode|0x7f)
	test.Equate(t, r.Read(registers.Alarm2Minutes), registers.BitAlarmMode|0x59)

	// alarm hours keep the 12-hour flags as well as the mode bit
	r.Write(registers.Alarm1Hours, registers.BitAlarmMode|registers.BitHour12Hour|bcd.Encode(13))
	test.Equate(t, r.Read(registers.Alarm1Hours),
		registers.BitAlarmMode|registers.BitHour12Hour|bcd.Encode(12))

	// day/date in day mode: three bit clamp, selection bit kept
	r.Write(registers.Alarm1DayOrDate, registers.BitAlarmIsDay|bcd.Encode(5))
	test.Equate(t, r.Read(registers.Alarm1DayOrDate), registers.BitAlarmIsDay|bcd.Encode(5))

	r.Write(registers.Alarm2DayOrDate, registers.BitAlarmIsDay|bcd.Encode(0))
	test.Equate(t, r.Read(registers.Alarm2DayOrDate), registers.BitAlarmIsDay|0x01)

	// day/date in date mode: six bit clamp
	r.Write(registers.Alarm1DayOrDate, bcd.Encode(30))
	test.Equate(t, r.Read(registers.Alarm1DayOrDate), bcd.Encode(30))

	r.Write(registers.Alarm1DayOrDate, 0x3f)
	test.Equate(t, r.Read(registers.Alarm1DayOrDate), 0x31)
}

func TestWriteCtrl1(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	test.Equate(t, r.Read(registers.Ctrl1),
		registers.BitCtrl1RS1|registers.BitCtrl1RS2|registers.BitCtrl1INTCN)

	// setting the CONV bit requests a conversion
	a := r.Write(registers.Ctrl1, 0xff)
	test.ExpectedSuccess(t, a.Has(rtc.ActionConvertTemperature))
	test.Equate(t, r.Read(registers.Ctrl1), 0xff)

	// but writing a zero to it does not clear it
	a = r.Write(registers.Ctrl1, 0x00)
	test.ExpectedFailure(t, a.Has(rtc.ActionConvertTemperature))
	test.Equate(t, r.Read(registers.Ctrl1), registers.BitCtrl1CONV)
}

func TestWriteCtrl2(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	test.Equate(t, r.Read(registers.Ctrl2), registers.BitCtrl2OSF)

	// OSF can be cleared
	r.Write(registers.Ctrl2, 0x00)
	test.Equate(t, r.Read(registers.Ctrl2), 0)

	// but not set
	r.Write(registers.Ctrl2, registers.BitCtrl2OSF)
	test.Equate(t, r.Read(registers.Ctrl2), 0)

	// BSY is stored as written even though the real device owns that bit
	r.Write(registers.Ctrl2, registers.BitCtrl2BSY|registers.BitCtrl2EN32KHZ)
	test.Equate(t, r.Read(registers.Ctrl2), registers.BitCtrl2BSY|registers.BitCtrl2EN32KHZ)
}

func TestWriteCtrl3(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	test.Equate(t, r.Read(registers.Ctrl3), 0)

	r.Write(registers.Ctrl3, 0xff)
	test.Equate(t, r.Read(registers.Ctrl3), registers.BitCtrl3BBTD)

	r.Write(registers.Ctrl3, 0x00)
	test.Equate(t, r.Read(registers.Ctrl3), 0)
}

func TestWriteAgingOffset(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	for _, v := range []uint8{0xff, 0x00, 0x88} {
		r.Write(registers.AgingOffset, v)
		test.Equate(t, r.Read(registers.AgingOffset), v)
	}
}

func TestWriteTemperatureIgnored(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	msb := r.Read(registers.TempMSB)
	lsb := r.Read(registers.TempLSB)

	r.Write(registers.TempMSB, 0xaf)
	r.Write(registers.TempLSB, 0xaf)

	test.Equate(t, r.Read(registers.TempMSB), msb)
	test.Equate(t, r.Read(registers.TempLSB), lsb)
}

func TestWriteSRAM(t *testing.T) {
	r := rtc.NewRTC(16)

	for a := int(registers.SRAM); a < int(registers.SRAM)+16; a++ {
		for _, v := range []uint8{0xff, 0x00, 0x88} {
			test.Equate(t, uint8(r.Write(uint8(a), v)), 0)
			test.Equate(t, r.Read(uint8(a)), v)
		}
	}

	// beyond the SRAM the writes disappear and the reads return zero
	for a := int(registers.SRAM) + 16; a < 256; a++ {
		test.Equate(t, uint8(r.Write(uint8(a), 0xff)), 0)
		test.Equate(t, r.Read(uint8(a)), 0)
	}
}

func TestNextAddr(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	test.Equate(t, r.NextAddr(0x00), 0x01)
	test.Equate(t, r.NextAddr(0x13), 0x14)

	// the cursor wraps modulo the address space, not the bank size
	test.Equate(t, r.NextAddr(0xff), 0x00)
}

func TestNextAddrWrapCommits(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)

	// ticks that arrive mid-read are committed when the cursor wraps, so
	// the second pass over the time registers sees them
	r.Tick()
	test.Equate(t, r.Seconds(), 0)
	test.Equate(t, r.NextAddr(0xff), 0x00)
	test.Equate(t, r.Seconds(), 1)
}
