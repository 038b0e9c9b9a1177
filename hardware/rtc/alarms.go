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
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
)

// checkAlarms evaluates both alarms against the current time and raises the
// corresponding flag in the status register on a match. Called once per
// tick, immediately after that tick's time advance.
//
// The flags are sticky. The engine never clears them; the bus master clears
// a flag by writing a zero to its bit in the status register.
func (r *RTC) checkAlarms() {
	if r.bank[registers.Ctrl2]&registers.BitCtrl2A1F == 0 {
		if r.matchAlarmField(registers.Alarm1Seconds, r.bank[registers.Seconds]&registers.MaskSeconds) &&
			r.matchAlarmField(registers.Alarm1Minutes, r.bank[registers.Minutes]&registers.MaskMinutes) &&
			r.matchAlarmField(registers.Alarm1Hours, r.bank[registers.Hours]&0x7f) &&
			r.matchAlarmDayOrDate(registers.Alarm1DayOrDate) {
			r.bank[registers.Ctrl2] |= registers.BitCtrl2A1F
		}
	}

	if r.bank[registers.Ctrl2]&registers.BitCtrl2A2F == 0 {
		// alarm 2 has no seconds register. it can only fire on the first
		// second of a minute
		if r.bank[registers.Seconds]&registers.MaskSeconds == 0 &&
			r.matchAlarmField(registers.Alarm2Minutes, r.bank[registers.Minutes]&registers.MaskMinutes) &&
			r.matchAlarmField(registers.Alarm2Hours, r.bank[registers.Hours]&0x7f) &&
			r.matchAlarmDayOrDate(registers.Alarm2DayOrDate) {
			r.bank[registers.Ctrl2] |= registers.BitCtrl2A2F
		}
	}
}

// matchAlarmField compares one alarm register against the corresponding
// (masked) time register value. A field with the alarm mode bit set always
// matches. The comparison is of the raw BCD bytes, as in the real device.
func (r *RTC) matchAlarmField(addr uint8, timeValue uint8) bool {
	a := r.bank[addr]
	if a&registers.BitAlarmMode == registers.BitAlarmMode {
		return true
	}
	return a&^registers.BitAlarmMode == timeValue
}

// matchAlarmDayOrDate compares an alarm day/date register against either
// the day of the week or the date, depending on the register's day/date
// selection bit.
func (r *RTC) matchAlarmDayOrDate(addr uint8) bool {
	a := r.bank[addr]
	if a&registers.BitAlarmMode == registers.BitAlarmMode {
		return true
	}
	if a&registers.BitAlarmIsDay == registers.BitAlarmIsDay {
		return a&registers.MaskDay == r.bank[registers.Day]&registers.MaskDay
	}
	return a&registers.MaskDate == r.bank[registers.Date]&registers.MaskDate
}
