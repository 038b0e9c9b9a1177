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
	"sync/atomic"

	"github.com/jetsetilly/soft323x/hardware/rtc/bcd"
	"github.com/jetsetilly/soft323x/hardware/rtc/calendar"
	"github.com/jetsetilly/soft323x/hardware/rtc/registers"
)

// Tick records the passing of one second. Designed to be called from the
// timebase goroutine (standing in for the timer interrupt of the reference
// hardware); it touches nothing but the tick accumulator.
//
// Update() must be called at least every 255 seconds or time will silently
// be lost.
func (r *RTC) Tick() {
	atomic.AddUint32(&r.ticks, 1)
}

// Update commits all ticks collected so far, advancing the calendar one
// second per tick and re-evaluating both alarms after each second. Returns
// the number of ticks that were applied.
//
// Update must be called exactly when
//
//   - a tick might have occurred and the I2C bus is idle, or
//   - the bus has become active with a start condition addressed to this
//     device, or
//   - the bus read cursor has wrapped to address zero during a sequential
//     read.
//
// Do not call Update at any other point. In particular, do not call it
// while the bus master is part way through a sequential read of the time
// registers: the master must observe a coherent snapshot.
func (r *RTC) Update() int {
	// a freshly written date is canonicalised against the current month and
	// year before any ticks are applied. this happens even when no ticks
	// are pending
	if r.dateWritten {
		n := calendar.NumberOfDays(r.Month(), r.Year())
		r.bank[registers.Date] = bcd.Clamp(r.bank[registers.Date]&registers.MaskDate, 0x01, bcd.Encode(n))
		r.dateWritten = false
	}

	// the truncation to uint8 keeps the byte-wide accumulator semantics of
	// the reference implementation
	ticks := uint8(atomic.SwapUint32(&r.ticks, 0))

	for i := uint8(0); i < ticks; i++ {
		r.advanceSecond()
		r.checkAlarms()
	}

	return int(ticks)
}

// advanceSecond moves the calendar forward by one second, rippling the
// carry through the seconds/minutes/hours/day/date/month/year chain and
// into the century bits.
func (r *RTC) advanceSecond() {
	if !bcd.Increment(&r.bank[registers.Seconds], registers.MaskSeconds, 0x59, 0) {
		return
	}

	if !bcd.Increment(&r.bank[registers.Minutes], registers.MaskMinutes, 0x59, 0) {
		return
	}

	hrs := &r.bank[registers.Hours]
	if *hrs&registers.BitHour12Hour == registers.BitHour12Hour {
		// 12-hour mode. the counter runs 1 to 12 and the AM/PM flag flips
		// on the 11-to-12 edge, not on the wrap
		if bcd.Increment(hrs, registers.MaskHours12Hour, 0x12, 0x01) {
			// 12 wrapped to 1. AM/PM unchanged and the day does not roll
			return
		}
		if *hrs&registers.MaskHours12Hour == 0x12 {
			*hrs ^= registers.BitHourPM
			if *hrs&registers.BitHourPM == registers.BitHourPM {
				// just became noon
				return
			}
			// just became midnight. the day rolls over
		} else {
			return
		}
	} else {
		// 24-hour mode
		if !bcd.Increment(hrs, registers.MaskHours24Hour, 0x23, 0) {
			return
		}
	}

	// a new day has started. the day of the week always wraps without
	// generating a carry of its own
	bcd.Increment(&r.bank[registers.Day], registers.MaskDay, 0x07, 0x01)

	n := calendar.NumberOfDays(r.Month(), r.Year())
	if !bcd.Increment(&r.bank[registers.Date], registers.MaskDate, bcd.Encode(n), 0x01) {
		return
	}

	if !bcd.Increment(&r.bank[registers.Month], registers.MaskMonth, 0x12, 0x01) {
		return
	}

	if !bcd.Increment(&r.bank[registers.Year], registers.MaskYear, 0x99, 0) {
		return
	}

	// a new century. the three century bits form a binary counter with
	// nothing beyond the last bit to carry into
	r.bank[registers.Month] ^= registers.BitMonthCentury0
	if r.bank[registers.Month]&registers.BitMonthCentury0 == 0 {
		r.bank[registers.Month] ^= registers.BitMonthCentury1
		if r.bank[registers.Month]&registers.BitMonthCentury1 == 0 {
			r.bank[registers.Month] ^= registers.BitMonthCentury2
		}
	}
}
