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

func alarm1Fired(r *rtc.RTC) bool {
	return r.Read(registers.Ctrl2)&registers.BitCtrl2A1F == registers.BitCtrl2A1F
}

func alarm2Fired(r *rtc.RTC) bool {
	return r.Read(registers.Ctrl2)&registers.BitCtrl2A2F == registers.BitCtrl2A2F
}

func clearAlarmFlags(r *rtc.RTC) {
	r.Write(registers.Ctrl2, 0x00)
}

func TestAlarm1EverySecond(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// all fields masked: the alarm fires on every second
	r.Write(registers.Alarm1Seconds, registers.BitAlarmMode)
	r.Write(registers.Alarm1Minutes, registers.BitAlarmMode)
	r.Write(registers.Alarm1Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm1DayOrDate, registers.BitAlarmMode)
	test.ExpectedFailure(t, alarm1Fired(r))

	for i := 0; i < 3600; i++ {
		step(r)
		test.ExpectedSuccess(t, alarm1Fired(r))
		clearAlarmFlags(r)
		test.ExpectedFailure(t, alarm1Fired(r))
	}
}

func TestAlarm1SecondsMatch(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// fire once per minute, at ss == 42
	r.Write(registers.Alarm1Seconds, bcd.Encode(42))
	r.Write(registers.Alarm1Minutes, registers.BitAlarmMode)
	r.Write(registers.Alarm1Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm1DayOrDate, registers.BitAlarmMode)

	// the flag transitions from 0 to 1 exactly on the matching second
	for i := 0; i < 41; i++ {
		step(r)
		test.ExpectedFailure(t, alarm1Fired(r))
	}
	step(r)
	test.ExpectedSuccess(t, alarm1Fired(r))

	// the flag is sticky until the host clears it
	step(r)
	test.ExpectedSuccess(t, alarm1Fired(r))

	clearAlarmFlags(r)
	test.ExpectedFailure(t, alarm1Fired(r))

	// it fires again at ss == 42 of the next minute
	for i := 0; i < 58; i++ {
		step(r)
		test.ExpectedFailure(t, alarm1Fired(r))
	}
	step(r)
	test.ExpectedSuccess(t, alarm1Fired(r))
}

func TestAlarm1FullMatch(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// 11:32:42, date comparison against the 2nd
	r.Write(registers.Alarm1Seconds, bcd.Encode(42))
	r.Write(registers.Alarm1Minutes, bcd.Encode(32))
	r.Write(registers.Alarm1Hours, bcd.Encode(11))
	r.Write(registers.Alarm1DayOrDate, bcd.Encode(2))

	// jump close to the match point and step across it
	setTime(r, bcd.Encode(19), bcd.Encode(1)|registers.BitMonthCentury, 2, bcd.Encode(11), 32, 41)
	test.ExpectedFailure(t, alarm1Fired(r))
	step(r)
	test.ExpectedSuccess(t, alarm1Fired(r))

	// same time on the wrong date does not fire
	clearAlarmFlags(r)
	setTime(r, bcd.Encode(19), bcd.Encode(1)|registers.BitMonthCentury, 3, bcd.Encode(11), 32, 41)
	step(r)
	test.ExpectedFailure(t, alarm1Fired(r))
}

func TestAlarm1DayMatch(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// day-of-week comparison. reset day is 2 so the alarm matches today
	r.Write(registers.Alarm1Seconds, bcd.Encode(5))
	r.Write(registers.Alarm1Minutes, bcd.Encode(0))
	r.Write(registers.Alarm1Hours, bcd.Encode(0))
	r.Write(registers.Alarm1DayOrDate, registers.BitAlarmIsDay|bcd.Encode(2))

	for i := 0; i < 4; i++ {
		step(r)
		test.ExpectedFailure(t, alarm1Fired(r))
	}
	step(r)
	test.ExpectedSuccess(t, alarm1Fired(r))

	// with the day register bumped to the wrong day there is no match at
	// the same time tomorrow
	clearAlarmFlags(r)
	r.Write(registers.Day, bcd.Encode(4))
	setTime(r, bcd.Encode(19), bcd.Encode(1)|registers.BitMonthCentury, 2, bcd.Encode(0), 0, 4)
	step(r)
	test.ExpectedFailure(t, alarm1Fired(r))
}

func TestAlarm2EveryMinute(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// all fields masked: alarm 2 still only fires on the top of a minute
	r.Write(registers.Alarm2Minutes, registers.BitAlarmMode)
	r.Write(registers.Alarm2Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm2DayOrDate, registers.BitAlarmMode)

	for j := 0; j < 10; j++ {
		for i := 0; i < 59; i++ {
			step(r)
			test.ExpectedFailure(t, alarm2Fired(r))
		}
		step(r)
		test.ExpectedSuccess(t, alarm2Fired(r))
		clearAlarmFlags(r)
	}
}

func TestAlarm2MinutesMatch(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// fire once per hour at mm == 52
	r.Write(registers.Alarm2Minutes, bcd.Encode(52))
	r.Write(registers.Alarm2Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm2DayOrDate, registers.BitAlarmMode)

	for i := 0; i < 52*60-1; i++ {
		step(r)
		test.ExpectedFailure(t, alarm2Fired(r))
	}
	step(r)
	test.ExpectedSuccess(t, alarm2Fired(r))

	// not again during the rest of the hour
	clearAlarmFlags(r)
	for i := 0; i < 8*60; i++ {
		step(r)
		test.ExpectedFailure(t, alarm2Fired(r))
	}
}

func TestAlarmFlagsIndependent(t *testing.T) {
	r := rtc.NewRTC(rtc.SRAMSizeDS3231)
	clearAlarmFlags(r)

	// alarm 1 fires every second, alarm 2 every minute. clearing one flag
	// must leave the other alone
	r.Write(registers.Alarm1Seconds, registers.BitAlarmMode)
	r.Write(registers.Alarm1Minutes, registers.BitAlarmMode)
	r.Write(registers.Alarm1Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm1DayOrDate, registers.BitAlarmMode)
	r.Write(registers.Alarm2Minutes, registers.BitAlarmMode)
	r.Write(registers.Alarm2Hours, registers.BitAlarmMode)
	r.Write(registers.Alarm2DayOrDate, registers.BitAlarmMode)

	for i := 0; i < 60; i++ {
		step(r)
	}
	test.ExpectedSuccess(t, alarm1Fired(r))
	test.ExpectedSuccess(t, alarm2Fired(r))

	r.Write(registers.Ctrl2, 0xff&^registers.BitCtrl2A1F)
	test.ExpectedFailure(t, alarm1Fired(r))
	test.ExpectedSuccess(t, alarm2Fired(r))
}
